package service

import (
	"fmt"

	"campushub-backend/internal/domain"
)

// All user-facing copy is French, matching the platform locale.

func ticketValidatedNotification(t *domain.Ticket) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationTypeSystem,
		Title:    "Billet validé",
		Message:  fmt.Sprintf("Votre billet pour « %s » a été validé. Présentez-le à l'entrée.", t.EventName),
		Icon:     "ticket",
		Priority: domain.NotificationPriorityNormal,
		Action:   &domain.NotificationAction{Type: "navigate", Target: "/events/" + t.EventID},
	}
}

func ticketValidatedEmail(t *domain.Ticket) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Votre billet pour %s est validé", t.EventName),
		HTML: fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Votre billet pour l'événement <strong>%s</strong> organisé par %s a été validé.</p><p>À très bientôt !</p>",
			t.HolderName(), t.EventName, t.ClubName),
	}
}

func ticketRejectedEmail(t *domain.Ticket, reason string) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Votre inscription à %s n'a pas été retenue", t.EventName),
		HTML: fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Votre inscription à l'événement <strong>%s</strong> n'a pas pu être validée.</p><p>Motif : %s</p>",
			t.HolderName(), t.EventName, reason),
	}
}

func joinApprovedNotification(club *domain.Club) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationTypeSystem,
		Title:    "Demande d'adhésion acceptée",
		Message:  fmt.Sprintf("Bienvenue au club %s ! Votre demande d'adhésion a été acceptée.", club.Name),
		Icon:     "users",
		Priority: domain.NotificationPriorityNormal,
		Action:   &domain.NotificationAction{Type: "navigate", Target: "/clubs/" + club.ID},
	}
}

func joinApprovedEmail(club *domain.Club, req *domain.JoinRequest) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Bienvenue au club %s", club.Name),
		HTML: fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Votre demande d'adhésion au club <strong>%s</strong> a été acceptée. Bienvenue parmi nous !</p>",
			req.Name, club.Name),
	}
}

func joinRejectedEmail(club *domain.Club, req *domain.JoinRequest, reason string) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Votre demande d'adhésion au club %s", club.Name),
		HTML: fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Votre demande d'adhésion au club <strong>%s</strong> n'a pas été retenue.</p><p>Motif : %s</p>",
			req.Name, club.Name, reason),
	}
}

func resourceApprovedNotification(res *domain.Resource) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationTypeSystem,
		Title:    "Ressource publiée",
		Message:  fmt.Sprintf("Votre ressource « %s » a été approuvée et publiée.", res.Title),
		Icon:     "book",
		Priority: domain.NotificationPriorityNormal,
		Action:   &domain.NotificationAction{Type: "navigate", Target: "/resources/" + res.ID},
	}
}

func resourceApprovedEmail(res *domain.Resource) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Votre ressource « %s » est en ligne", res.Title),
		HTML: fmt.Sprintf(
			"<p>Bonjour,</p><p>Votre ressource <strong>%s</strong> (%s) a été approuvée et est maintenant visible par tous les étudiants.</p><p>Merci pour votre contribution !</p>",
			res.Title, res.Subject),
	}
}

func resourceRejectedEmail(res *domain.Resource, reason string) *EmailMessage {
	return &EmailMessage{
		Subject: fmt.Sprintf("Votre ressource « %s » n'a pas été publiée", res.Title),
		HTML: fmt.Sprintf(
			"<p>Bonjour,</p><p>Votre ressource <strong>%s</strong> n'a pas pu être publiée.</p><p>Motif : %s</p>",
			res.Title, reason),
	}
}

func resourcePublishedAnnouncement(res *domain.Resource) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationTypeResource,
		Title:    "Nouvelle ressource disponible",
		Message:  fmt.Sprintf("%s — %s (%s, %s) est maintenant disponible.", res.Title, res.Subject, res.Filiere, res.Semester),
		Icon:     "book-open",
		Priority: domain.NotificationPriorityLow,
		Action:   &domain.NotificationAction{Type: "navigate", Target: "/resources/" + res.ID},
	}
}
