package workers

import (
	"context"
	"time"

	"ticketly/config"
	bookingRepo "ticketly/database/repository/booking"
	userRepo "ticketly/database/repository/user"
	"ticketly/services/notification"
	"ticketly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderScan = "reminder:scan"

// ReminderWorker periodically scans the ledger for confirmed bookings whose
// journey is imminent and emails each holder once. The scan runs through
// asynq so multiple instances share one schedule; the per-booking claim in
// MarkReminderSent keeps duplicate workers from double-sending.
type ReminderWorker struct {
	Bookings  bookingRepo.BookingRepository
	Users     userRepo.UserRepository
	Notifier  notification.NotificationService
	WindowMin int

	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Start launches the scan schedule and the task server in the background.
func (w *ReminderWorker) Start() error {
	opts := redisOpts()

	w.scheduler = asynq.NewScheduler(opts, nil)
	if _, err := w.scheduler.Register("@every 1m", asynq.NewTask(TypeReminderScan, nil)); err != nil {
		return err
	}

	w.server = asynq.NewServer(opts, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderScan, w.HandleScan)

	go func() {
		if err := w.scheduler.Run(); err != nil {
			utils.GetLogger().Error("reminder scheduler stopped", zap.Error(err))
		}
	}()
	go func() {
		if err := w.server.Run(mux); err != nil {
			utils.GetLogger().Error("reminder worker stopped", zap.Error(err))
		}
	}()

	utils.GetLogger().Info("reminder worker started", zap.Int("windowMin", w.WindowMin))
	return nil
}

// Shutdown stops the scheduler and drains the task server.
func (w *ReminderWorker) Shutdown() {
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	if w.server != nil {
		w.server.Shutdown()
	}
}

// HandleScan processes one scan tick.
func (w *ReminderWorker) HandleScan(ctx context.Context, _ *asynq.Task) error {
	return w.Scan(ctx, time.Now())
}

// Scan sends reminders for bookings whose journey date falls inside the
// window starting at now. Send failures for one booking never block the
// rest.
func (w *ReminderWorker) Scan(ctx context.Context, now time.Time) error {
	window := time.Duration(w.WindowMin) * time.Minute
	due, err := w.Bookings.FindDueReminders(now, now.Add(window))
	if err != nil {
		return err
	}

	for i := range due {
		booking := &due[i]

		claimed, err := w.Bookings.MarkReminderSent(booking.ID)
		if err != nil {
			utils.GetLogger().Error("failed to claim reminder",
				zap.String("bookingId", booking.BookingID), zap.Error(err))
			continue
		}
		if !claimed {
			continue
		}

		user, err := w.Users.GetByID(booking.UserID)
		if err != nil || user == nil {
			utils.GetLogger().Warn("skipping reminder, user lookup failed",
				zap.String("userId", booking.UserID), zap.Error(err))
			continue
		}

		if err := w.Notifier.SendReminderEmail(ctx, user.Email, booking); err != nil {
			utils.GetLogger().Error("failed to send reminder email",
				zap.String("bookingId", booking.BookingID), zap.Error(err))
		}
	}
	return nil
}
