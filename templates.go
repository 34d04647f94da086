package main

import "html/template"

// The web companion keeps its markup in-file so the binary stays
// self-contained. Fragment templates are fetched by HTMX from the index
// page.

func loadTemplates() *template.Template {
	t := template.New("")
	for name, src := range pageTemplates {
		template.Must(t.New(name).Parse(src))
	}
	return t
}

var pageTemplates = map[string]string{
	"index.html": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Zach Kordas-Potter</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<nav id="navbar">
	<a href="#home">home</a>
	<a href="#about">about</a>
	<a href="#projects">projects</a>
	<a href="#experience">experience</a>
	<a href="#contact">contact</a>
</nav>
<section id="home">
	<h1>Zach Kordas-Potter</h1>
	<p class="typed">{{.heroPhrase}}</p>
</section>
<section id="about">
	<h2>About</h2>
	<p>{{.aboutMeContent}}</p>
</section>
<section id="projects">
	<h2>Projects</h2>
	{{range .projects}}
	<div class="card">
		<h3>{{.Title}}</h3>
		<p>{{.Blurb}}</p>
	</div>
	{{end}}
</section>
<section id="experience">
	<h2>Experience</h2>
	<div hx-get="/work-content" hx-trigger="load" hx-swap="innerHTML"></div>
	<h2>Education</h2>
	<div hx-get="/education-content" hx-trigger="load" hx-swap="innerHTML"></div>
</section>
<section id="contact">
	<div hx-get="/contact-form" hx-trigger="load" hx-swap="innerHTML"></div>
</section>
<footer>&copy; {{.year}} Zach Kordas-Potter</footer>
</body>
</html>`,

	"contact.html": `<form id="contact-form" hx-post="/contact" hx-swap="outerHTML">
	<h2>{{.title}}</h2>
	<label>Name <input type="text" name="fullName"></label>
	<label>Email <input type="email" name="email"></label>
	<label>Message <textarea name="message"></textarea></label>
	<button type="submit">Send Message</button>
</form>`,

	"contact-success.html": `<div class="form-success" role="status">{{.success}}</div>`,

	"contact-error.html": `<div class="form-error" role="alert">{{.error}}</div>`,

	"work-content.html": `{{range .positions}}
<div class="entry">
	<h3>{{.Title}} — {{.Org}}</h3>
	<p class="dates">{{.Start}} – {{.End}}</p>
	<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}`,

	"education-content.html": `{{range .positions}}
<div class="entry">
	<h3>{{.Title}} — {{.Org}}</h3>
	<p class="dates">{{.Start}} – {{.End}}</p>
	<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}`,

	"admin-login.html": `<!DOCTYPE html>
<html><head><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
{{if .error}}<p class="form-error">{{.error}}</p>{{end}}
<form method="post" action="/admin/login">
	<label>Username <input type="text" name="username"></label>
	<label>Password <input type="password" name="password"></label>
	<button type="submit">Log in</button>
</form>
</body></html>`,

	"admin-dashboard.html": `<!DOCTYPE html>
<html><head><title>Dashboard</title></head>
<body>
<h1>Dashboard</h1>
<ul>
	<li>Total visitors: {{.stats.TotalVisitors}}</li>
	<li>Unique visitors: {{.stats.UniqueVisitors}}</li>
	<li>Today: {{.stats.VisitorsToday}}</li>
	<li>This week: {{.stats.VisitorsThisWeek}}</li>
	<li>Messages: {{.stats.TotalMessages}}</li>
</ul>
<a href="/admin/api/stats">JSON</a> · <a href="/admin/logout">Log out</a>
</body></html>`,

	"admin-error.html": `<!DOCTYPE html>
<html><body><p class="form-error">{{.error}}</p></body></html>`,
}
