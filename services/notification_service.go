package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/ajshan23/alghazal-b-p/config"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	gomail "gopkg.in/gomail.v2"
)

// NotificationService sends best-effort email notifications. Failures are
// logged and swallowed so they never block the operation that triggered
// them; there is no retry.
type NotificationService struct {
	userRepo *repositories.UserRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService() *NotificationService {
	return &NotificationService{
		userRepo: repositories.NewUserRepository(),
	}
}

// send delivers one email over SMTP. Returns an error for callers that
// want to log it; nothing in this service propagates failures further.
func (s *NotificationService) send(recipients []string, subject, htmlBody, plainText string) error {
	if len(recipients) == 0 {
		return nil
	}

	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	port := config.GetEnvInt("SMTP_PORT", 587)
	username := config.GetEnv("SMTP_USER", "")
	password := config.GetEnv("SMTP_PASSWORD", "")
	from := config.GetEnv("SMTP_FROM", "noreply@alghazal.ae")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainText)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

// NotifyStatusChange emails the project stakeholders (admins, assigned
// engineer, client) about a status transition. Best effort only.
func (s *NotificationService) NotifyStatusChange(project models.Project, from, to models.ProjectStatus) {
	recipients := s.stakeholderEmails(project)

	subject := fmt.Sprintf("Project %s: status changed to %s", project.ProjectNumber, to)
	plain := fmt.Sprintf("Project %s (%s) moved from %s to %s.", project.ProjectNumber, project.Name, from, to)
	html := fmt.Sprintf(
		"<p>Project <strong>%s</strong> (%s) moved from <em>%s</em> to <em>%s</em>.</p>",
		project.ProjectNumber, project.Name, from, to)

	if err := s.send(recipients, subject, html, plain); err != nil {
		log.Printf("Warning: status change notification for project %s failed: %v", project.ProjectNumber, err)
	}
}

// NotifyTeamAssigned emails the assigned workers and driver that they have
// been put on a project. Best effort only.
func (s *NotificationService) NotifyTeamAssigned(project models.Project, team []models.User) {
	var recipients []string
	var names []string
	for _, member := range team {
		if member.Email != "" {
			recipients = append(recipients, member.Email)
		}
		names = append(names, member.Name)
	}

	subject := fmt.Sprintf("You have been assigned to project %s", project.ProjectNumber)
	plain := fmt.Sprintf("Team for project %s (%s): %s. Location: %s %s.",
		project.ProjectNumber, project.Name, strings.Join(names, ", "), project.Building, project.Location)
	html := fmt.Sprintf("<p>You have been assigned to project <strong>%s</strong> (%s).</p><p>Location: %s %s</p>",
		project.ProjectNumber, project.Name, project.Building, project.Location)

	if err := s.send(recipients, subject, html, plain); err != nil {
		log.Printf("Warning: team assignment notification for project %s failed: %v", project.ProjectNumber, err)
	}
}

// NotifyCredentials emails a newly created staff account its login
// credentials. Best effort only.
func (s *NotificationService) NotifyCredentials(user models.User, password string) {
	subject := "Your Al Ghazal back-office account"
	plain := fmt.Sprintf("Hello %s,\n\nAn account was created for you.\nEmail: %s\nPassword: %s\n\nPlease change the password after first login.", user.Name, user.Email, password)
	html := fmt.Sprintf("<p>Hello %s,</p><p>An account was created for you.</p><p>Email: <strong>%s</strong><br>Password: <strong>%s</strong></p><p>Please change the password after first login.</p>", user.Name, user.Email, password)

	if err := s.send([]string{user.Email}, subject, html, plain); err != nil {
		log.Printf("Warning: credentials notification for %s failed: %v", user.Email, err)
	}
}

// stakeholderEmails collects admin, assigned engineer and client addresses
func (s *NotificationService) stakeholderEmails(project models.Project) []string {
	var recipients []string

	admins, err := s.userRepo.FindByRole(models.RoleAdmin)
	if err != nil {
		log.Printf("Warning: failed to load admin recipients: %v", err)
	}
	for _, admin := range admins {
		recipients = append(recipients, admin.Email)
	}

	if project.AssignedEngineer != nil && project.AssignedEngineer.Email != "" {
		recipients = append(recipients, project.AssignedEngineer.Email)
	}

	if project.Client.Email != "" {
		recipients = append(recipients, project.Client.Email)
	}

	return recipients
}
