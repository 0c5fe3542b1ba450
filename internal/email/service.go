package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey  = "fitconnect:emails"
	failedKey = "fitconnect:emails:failed"

	maxTries   = 3
	retryDelay = 5 * time.Second
	popTimeout = 2 * time.Second
)

const (
	TypeBookingConfirmation = "booking_confirmation"
	TypeCancellation        = "cancellation"
	TypeStatusUpdate        = "status_update"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Service queues emails in a Redis list; Start drains the list over SMTP.
type Service struct {
	redis *redis.Client
	cfg   Config
	send  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	retry time.Duration
}

func New(rdb *redis.Client, cfg Config) *Service {
	return &Service{
		redis: rdb,
		cfg:   cfg,
		send:  smtp.SendMail,
		retry: retryDelay,
	}
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now().UTC(),
	}

	if err := s.push(ctx, job); err != nil {
		metrics.RecordEmail(emailType, "queue_failed")
		logger.Error("failed to queue email", "type", emailType, "to", to, "error", err)
		return err
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Info("email queued", "type", emailType, "to", to)
	return nil
}

func (s *Service) push(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.LPush(ctx, queueKey, string(data)).Err()
}

// Start processes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, popTimeout, queueKey).Result()
	if err != nil {
		return
	}
	metrics.SetEmailQueueLength(s.QueueLength(ctx))

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email job", "error", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Warn("email send failed", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries >= maxTries {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(ctx, job, err)
			return
		}

		select {
		case <-ctx.Done():
		case <-time.After(s.retry):
		}
		// Requeue even on shutdown so the job survives the restart.
		if err := s.push(context.WithoutCancel(ctx), job); err != nil {
			logger.Error("failed to requeue email", "to", job.To, "error", err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return s.send(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now().UTC(),
	}
	data, _ := json.Marshal(failed)
	if pushErr := s.redis.LPush(context.WithoutCancel(ctx), failedKey, string(data)).Err(); pushErr != nil {
		logger.Error("failed to record failed email", "to", job.To, "error", pushErr)
		return
	}
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
