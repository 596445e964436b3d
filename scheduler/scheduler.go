package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Late alerts go out on these days of the month.
var lateAlertDays = map[int]bool{2: true, 9: true, 16: true, 23: true}

// Scheduler runs the daily dispatcher. Each branch claims a job_runs row
// (job type + period key) before doing work, so overlapping or repeated
// invocations of the same period are no-ops.
type Scheduler struct {
	cron      *cron.Cron
	db        *gorm.DB
	payments  *services.PaymentService
	notify    *services.NotifyService
	calendar  *services.CalendarService
	isRunning bool
}

func New(db *gorm.DB, payments *services.PaymentService, notify *services.NotifyService, calendar *services.CalendarService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		db:       db,
		payments: payments,
		notify:   notify,
		calendar: calendar,
	}
}

// Start registers the daily job at DAILY_JOB_HOUR (default 6) and starts
// the cron loop.
func (s *Scheduler) Start() error {
	hour, err := strconv.Atoi(utils.EnvOrDefault("DAILY_JOB_HOUR", "6"))
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid DAILY_JOB_HOUR: %v", err)
	}

	spec := fmt.Sprintf("0 %d * * *", hour)
	_, err = s.cron.AddFunc(spec, func() {
		log.Println("Scheduler: starting daily dispatch...")
		s.RunDaily(time.Now())
		log.Println("Scheduler: daily dispatch finished")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with daily run at %02d:00 (cron: %s)", hour, spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// Claim inserts the idempotency row for (jobType, periodKey). False means
// another run already owns the period.
func (s *Scheduler) Claim(jobType, periodKey string) bool {
	run := models.JobRun{JobType: jobType, PeriodKey: periodKey, RanAt: time.Now()}
	if err := s.db.Create(&run).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
			return false
		}
		log.Printf("Scheduler: claim %s/%s failed: %v", jobType, periodKey, err)
		return false
	}
	return true
}

// RunDaily executes every branch due on the given day. Branch failures are
// logged and do not stop the others.
func (s *Scheduler) RunDaily(now time.Time) {
	dayKey := now.Format("2006-01-02")
	monthKey := now.Format("2006-01")

	if s.Claim(models.JobTypePaymentSweep, dayKey) {
		if changed, err := s.payments.SweepStatuses(now); err != nil {
			log.Printf("Scheduler: payment sweep failed: %v", err)
		} else {
			log.Printf("Scheduler: payment sweep updated %d tenants", changed)
		}
	}

	switch day := now.Day(); {
	case day == 1:
		if s.Claim(models.JobTypeRentInvoices, monthKey) {
			if sent, err := s.notify.SendInvoices(); err != nil {
				log.Printf("Scheduler: invoices failed: %v", err)
			} else {
				log.Printf("Scheduler: sent %d invoices", sent)
			}
		}
		if s.Claim(models.JobTypeCalendarRegen, monthKey) {
			if created, err := s.calendar.RegenerateRentDue(now); err != nil {
				log.Printf("Scheduler: calendar regeneration failed: %v", err)
			} else {
				log.Printf("Scheduler: regenerated %d rent-due events", created)
			}
		}
	case day == 25:
		if s.Claim(models.JobTypeRentReminders, monthKey) {
			if sent, err := s.notify.SendReminders(); err != nil {
				log.Printf("Scheduler: reminders failed: %v", err)
			} else {
				log.Printf("Scheduler: sent %d reminders", sent)
			}
		}
	case lateAlertDays[day]:
		if s.Claim(models.JobTypeLateAlerts, dayKey) {
			if sent, err := s.notify.SendLateAlerts(); err != nil {
				log.Printf("Scheduler: late alerts failed: %v", err)
			} else {
				log.Printf("Scheduler: sent %d late alerts", sent)
			}
		}
	}
}
