package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-outreach-automation/internal/config"
	"go-outreach-automation/internal/mailer"
	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/outreach"
	"go-outreach-automation/internal/pdf"
	"go-outreach-automation/internal/prospects"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/reporter"
	"go-outreach-automation/internal/store"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pg, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer pg.Close()
	log.Println("✅ Connected to database")

	svc := &outreach.Service{
		Store: pg,
		PDF:   pdf.NewGenerator(),
		Cfg:   cfg,
	}

	if len(cfg.SMTPPasswords) > 0 {
		svc.Mail = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPPasswords)
	} else {
		log.Println("⚠️ No SMTP passwords configured, application sending disabled")
	}

	if cfg.TelegramToken != "" {
		tg, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter disabled: %v", err)
		} else {
			svc.Reporter = tg
			log.Println("✅ Telegram reporter ready")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Outreach Automation API is running!",
			"status":  "healthy",
		})
	})

	r.GET("/identities", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"identities": registry.Usernames()})
	})

	r.GET("/identities/:user/roles", func(c *gin.Context) {
		id, err := registry.Get(c.Param("user"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"username": id.Username,
			"roles":    id.Roles,
			"stages":   models.StageValues(),
		})
	})

	r.POST("/identities/:user/prospects", func(c *gin.Context) {
		var p models.Prospect
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.AddProspect(c.Request.Context(), c.Param("user"), p); err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	})

	r.GET("/identities/:user/prospects", func(c *gin.Context) {
		q := prospects.Query{
			Company: c.Query("company"),
			Role:    c.Query("role"),
			Stage:   c.Query("stage"),
		}
		records, err := svc.ListProspects(c.Request.Context(), c.Param("user"), q)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"prospects": records, "count": len(records)})
	})

	r.GET("/identities/:user/prospects/:name/message", func(c *gin.Context) {
		draft, err := svc.DraftMessage(c.Request.Context(), c.Param("user"), c.Param("name"), c.Query("stage"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	})

	r.POST("/identities/:user/applications", func(c *gin.Context) {
		var sub outreach.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result, err := svc.SubmitApplication(c.Request.Context(), c.Param("user"), sub)
		if err != nil {
			if result != nil && len(result.Failed) > 0 {
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "result": result})
				return
			}
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// abortWith maps domain errors onto HTTP statuses.
func abortWith(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrUnknownIdentity),
		errors.Is(err, outreach.ErrProspectNotFound),
		errors.Is(err, store.ErrTableNotFound):
		status = http.StatusNotFound
	case errors.Is(err, prospects.ErrDuplicateName):
		status = http.StatusConflict
	case errors.Is(err, prospects.ErrMissingField),
		errors.Is(err, prospects.ErrRoleNotAllowed),
		errors.Is(err, prospects.ErrInvalidStage),
		errors.Is(err, store.ErrConstraintViolation),
		errors.Is(err, outreach.ErrMissingInput),
		errors.Is(err, outreach.ErrNoRecipients):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
