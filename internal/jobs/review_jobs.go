package jobs

import (
	"context"
	"fmt"
	"time"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/logger"
)

// notificationRetention is how long a read in-app notification is kept
// before the weekly purge removes it.
const notificationRetention = 30 * 24 * time.Hour

// SendPendingReviewDigest emails each club board a summary of tickets and
// join requests still awaiting a decision.
func (jr *JobRunner) SendPendingReviewDigest() {
	jr.runWithRecovery("SendPendingReviewDigest", func() {
		ctx := context.Background()

		clubs, err := jr.clubs.List(ctx)
		if err != nil {
			logger.Error("Failed to list clubs", "error", err)
			return
		}

		tickets, err := jr.tickets.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list tickets", "error", err)
			return
		}

		// Pending ticket count per club.
		pendingTickets := make(map[string]int)
		for _, t := range tickets {
			if t.Status == domain.TicketStatusPending {
				pendingTickets[t.ClubID]++
			}
		}

		sent := 0
		for _, club := range clubs {
			requests, err := jr.clubs.ListJoinRequests(ctx, club.ID)
			if err != nil {
				logger.Error("Failed to list join requests", "club_id", club.ID, "error", err)
				continue
			}

			ticketCount := pendingTickets[club.ID]
			requestCount := len(requests)
			if ticketCount == 0 && requestCount == 0 {
				continue
			}

			subject := fmt.Sprintf("%s : demandes en attente de validation", club.Name)
			html := fmt.Sprintf(`<p>Bonjour,</p>
<p>Des demandes attendent une décision du bureau de <strong>%s</strong> :</p>
<ul>
<li>Billets en attente : %d</li>
<li>Demandes d'adhésion en attente : %d</li>
</ul>
<p>Connectez-vous au tableau de bord pour les traiter.</p>`, club.Name, ticketCount, requestCount)

			for role, email := range club.Board {
				if email == "" {
					continue
				}
				if err := jr.email.Send(ctx, email, role, subject, html); err != nil {
					logger.Error("Failed to send review digest",
						"club_id", club.ID,
						"email", email,
						"error", err)
					continue
				}
				sent++
			}

			logger.Debug("Sent review digest",
				"club_id", club.ID,
				"pending_tickets", ticketCount,
				"pending_requests", requestCount)
		}

		logger.Info("Review digests sent", "count", sent)
	})
}

// PurgeReadNotifications deletes read in-app notifications older than the
// retention window, per user.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ctx := context.Background()

		userIDs, err := jr.notifications.ListUserIDs(ctx)
		if err != nil {
			logger.Error("Failed to list notification users", "error", err)
			return
		}

		cutoff := time.Now().Add(-notificationRetention).UnixMilli()
		total := 0
		for _, userID := range userIDs {
			n, err := jr.notifications.PurgeRead(ctx, userID, cutoff)
			if err != nil {
				logger.Error("Failed to purge notifications", "user_id", userID, "error", err)
				continue
			}
			total += n
		}

		logger.Info("Read notifications purged", "users", len(userIDs), "deleted", total)
	})
}
