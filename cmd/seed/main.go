package main

import (
	"time"

	"github.com/yukikurage/member-care-api/internal/config"
	"github.com/yukikurage/member-care-api/internal/database"
	"github.com/yukikurage/member-care-api/internal/logging"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/services"
)

// Seeds a development database with a handful of members, tasks, and
// follow-ups so the dashboard has something to show.
func main() {
	cfg := config.Load()
	log := logging.NewLogger(cfg.AppName, cfg.Env)

	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	db := database.GetDB()
	memberService := services.NewMemberService(repository.NewMemberRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	followUpService := services.NewFollowUpService(repository.NewFollowUpRepository(db))

	now := time.Now()
	joined := now.AddDate(0, -2, 0)

	members := []services.CreateMemberInput{
		{
			Name:          "Grace Adeyemi",
			Email:         "grace.adeyemi@example.com",
			Phone:         "+1-555-0101",
			Status:        models.MemberStatusNew,
			ConvertedDate: &now,
			InBibleStudy:  true,
		},
		{
			Name:             "Daniel Okafor",
			Email:            "daniel.okafor@example.com",
			MembershipStatus: models.MembershipActive,
			Status:           models.MemberStatusActive,
			JoinDate:         &joined,
			ConvertedDate:    &joined,
			Baptized:         true,
			InSmallGroup:     true,
		},
		{
			Name:   "Ruth Mensah",
			Phone:  "+1-555-0103",
			Status: models.MemberStatusContacted,
			Notes:  "Prefers evening calls",
		},
	}

	for _, input := range members {
		member, err := memberService.CreateMember(input)
		if err != nil {
			log.WithError(err).Fatal("Failed to seed member")
		}
		log.WithField("member", member.Name).Info("Seeded member")

		task, err := taskService.CreateTask(services.CreateTaskInput{
			Title:    "Welcome visit for " + member.Name,
			MemberID: member.ID,
			Priority: models.TaskPriorityHigh,
			DueDate:  now.AddDate(0, 0, 7),
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to seed task")
		}
		log.WithField("task", task.Title).Info("Seeded task")

		if _, err := followUpService.CreateFollowUp(services.CreateFollowUpInput{
			MemberID:      member.ID,
			Type:          models.FollowUpCall,
			Notes:         "Initial check-in",
			ScheduledDate: now.AddDate(0, 0, 3),
		}); err != nil {
			log.WithError(err).Fatal("Failed to seed follow-up")
		}
	}

	log.Info("Seeding complete")
}
