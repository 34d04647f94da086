package main

// Portfolio content. The terminal and web front ends both render from
// these definitions, so copy edits only ever happen here.

var AboutMe = `I love building software that's both useful and fun, and I'm always curious
about how things work behind the scenes. Most of my projects start with a simple idea and
turn into a chance to learn something new, whether it's exploring a different language,
experimenting with tools, or solving tricky problems.

When I'm not coding, you'll usually find me training Muay Thai, shooting pool with
friends, or chasing down a new challenge outside the screen.`

// TypedPhrases cycle in the hero line.
var TypedPhrases = []string{
	"Software Engineer",
	"Go Developer",
	"Terminal UI Enthusiast",
	"Lifelong Learner",
}

type Project struct {
	Title string
	Blurb string
	Tags  []string
}

var Projects = []Project{
	{
		Title: "gomail",
		Blurb: `A terminal-based email client built in Go with fuzzyfinder capabilities
using the Charmbracelet TUI framework and go-imap.`,
		Tags: []string{"Go", "Bubble Tea", "IMAP"},
	},
	{
		Title: "tunein",
		Blurb: `A terminal-based music streaming application built in Go with an elegant TUI
interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from
the command line.`,
		Tags: []string{"Go", "Bubble Tea", "yt-dlp"},
	},
	{
		Title: "gamerec",
		Blurb: `A machine learning-powered web application that uses TF-IDF vectorization and
cosine similarity to recommend games based on content analysis, featuring interactive
data visualizations and real-time filtering by user reviews and ratings.`,
		Tags: []string{"Python", "scikit-learn", "Flask"},
	},
	{
		Title: "zach-dev",
		Blurb: `A modern, responsive portfolio website built with Go, Gin framework, and HTMX
for dynamic interactions, styled with Tailwind CSS and enhanced with Alpine.js for
seamless client-side interactivity without traditional JavaScript frameworks.`,
		Tags: []string{"Go", "Gin", "HTMX"},
	},
}

type Skill struct {
	Name    string
	Percent int
}

var Skills = []Skill{
	{Name: "Go", Percent: 90},
	{Name: "Python", Percent: 80},
	{Name: "SQL", Percent: 75},
	{Name: "Linux / Shell", Percent: 85},
	{Name: "HTML & CSS", Percent: 70},
}

type Stat struct {
	Label string
	// Value is the rendered terminal value, e.g. "12+" or "100%".
	// Any non-digit suffix is preserved by the counter animation.
	Value string
}

var Stats = []Stat{
	{Label: "Projects shipped", Value: "12+"},
	{Label: "Years writing code", Value: "6"},
	{Label: "Merch transitions executed", Value: "300+"},
	{Label: "Coffee dependency", Value: "100%"},
}

type Position struct {
	Title   string
	Org     string
	Start   string
	End     string
	Bullets []string
}

var WorkHistory = []Position{
	{
		Title: "Presentation Expert",
		Org:   "Target",
		Start: "Aug 2023",
		End:   "Present",
		Bullets: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Title: "Manager",
		Org:   "Jasons Catered Events",
		Start: "Aug 2016",
		End:   "Present",
		Bullets: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime",
		},
	},
}

var Education = []Position{
	{
		Title: "Bachelor of Computer Science",
		Org:   "Western Governors University",
		Start: "Sept 2019",
		End:   "May 2023",
		Bullets: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Title: "Project Management",
		Org:   "Comptia",
		Start: "July 2022",
		End:   "Present",
		Bullets: []string{
			"Certified in agile project management methodology",
		},
	},
}
