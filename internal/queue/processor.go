package queue

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cookbook/internal/models"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed broadcasts.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// AdminFinder looks up the users that should receive moderation-queue broadcasts.
type AdminFinder interface {
	FindAdmins(ctx context.Context) ([]models.User, error)
}

// NotificationCreator persists a single notification document.
type NotificationCreator interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Processor fans out admin broadcast jobs from the queue: one notification
// per admin user per submitted recipe. Delivery is best-effort; a failed
// admin lookup is retried with backoff, a failed single insert is logged
// and skipped.
type Processor struct {
	queue        *MemoryQueue
	admins       AdminFinder
	notifier     NotificationCreator
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new broadcast job processor.
func NewProcessor(queue *MemoryQueue, admins AdminFinder, notifier NotificationCreator, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		admins:      admins,
		notifier:    notifier,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Broadcast processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Broadcast processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Broadcast worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Broadcast worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

// processJob delivers one notification per admin for a submitted recipe.
func (p *Processor) processJob(ctx context.Context, job BroadcastJob) {
	admins, err := p.admins.FindAdmins(ctx)
	if err != nil {
		log.Printf("Admin lookup failed for recipe %s broadcast: %v", job.RecipeID.Hex(), err)
		p.handleFailure(job)
		return
	}

	message := fmt.Sprintf("%s submitted %q for review.", job.SubmitterName, job.RecipeTitle)

	delivered := 0
	for _, admin := range admins {
		notification := &models.Notification{
			UserID:  admin.ID,
			Title:   "New Recipe Submitted!",
			Message: message,
			Link:    "/admin/recipes/pending",
			Type:    models.NotificationTypeAdmin,
		}
		if err := p.notifier.Create(ctx, notification); err != nil {
			// Best-effort per admin: no retry of the whole job, partial
			// delivery would otherwise duplicate notifications.
			log.Printf("Failed to notify admin %s about recipe %s: %v", admin.ID.Hex(), job.RecipeID.Hex(), err)
			continue
		}
		delivered++
	}

	log.Printf("Broadcast for recipe %s delivered to %d/%d admins", job.RecipeID.Hex(), delivered, len(admins))
}

func (p *Processor) handleFailure(job BroadcastJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Max retries reached for recipe %s broadcast, dropping job", job.RecipeID.Hex())
		return
	}

	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying broadcast for recipe %s in %v (attempt %d/%d)", job.RecipeID.Hex(), delay, job.RetryCount+1, MaxRetries)

	// Uses shutdownCh instead of ctx so in-flight retries are abandoned
	// cleanly during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for recipe %s, dropping job", job.RecipeID.Hex())
			return
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue broadcast for recipe %s: %v", job.RecipeID.Hex(), err)
			}
		}
	}()
}
