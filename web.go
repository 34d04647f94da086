package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"time"

	"github.com/gin-gonic/gin"
)

// runWeb starts the web companion: the same portfolio content as the TUI,
// rendered server-side with HTMX fragments.
func runWeb(cfg *Config) {
	var err error
	db, err = openDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	initAdminToken()
	initVisitorTracking()

	r := newRouter(cfg)
	log.Printf("Web companion listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// newRouter builds the gin engine. Split out from runWeb so the handler
// tests can drive it with httptest.
func newRouter(cfg *Config) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(visitorTrackingMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent": AboutMe,
			"heroPhrase":     cfg.Phrases[0],
			"projects":       Projects,
			"year":           time.Now().Year(),
		})
	})

	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"positions": WorkHistory,
		})
	})

	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"positions": Education,
		})
	})

	// Contact form submission with HTMX. Validation is shared with the
	// terminal form; delivery goes out over SMTP when credentials are
	// configured and lands in the outbox table either way.
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if bad := validateContact(name, email, message); len(bad) > 0 {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in every field and use a valid email address.",
			})
			return
		}

		delivered := false
		if err := sendContactEmail(cfg, name, email, message); err != nil {
			log.Printf("SMTP delivery failed, keeping message in outbox: %v", err)
		} else {
			delivered = true
		}

		if _, err := saveContactMessage(name, email, message, delivered); err != nil {
			log.Printf("Error storing contact message: %v", err)
			if !delivered {
				c.HTML(http.StatusOK, "contact-error.html", gin.H{
					"error": "Sorry, there was an error sending your message. Please try again later.",
				})
				return
			}
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupAdminRoutes(r, cfg)
	return r
}

func sendContactEmail(cfg *Config, name, email, message string) error {
	smtpHost := cfg.SMTPHost
	smtpPort := cfg.SMTPPort
	toEmail := cfg.ToEmail

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = "zachkordaspotter@gmail.com"
	}

	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.SMTPUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, cfg.SMTPUser, []string{toEmail}, msg); err != nil {
		return err
	}

	log.Printf("Email sent successfully from %s (%s)", name, email)
	return nil
}
