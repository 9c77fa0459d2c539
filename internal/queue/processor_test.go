package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"cookbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAdminFinder returns a fixed admin list for testing.
type fakeAdminFinder struct {
	mu     sync.Mutex
	admins []models.User
	err    error
	calls  int
}

func (f *fakeAdminFinder) FindAdmins(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.admins, nil
}

func (f *fakeAdminFinder) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeNotifier records created notifications, optionally failing per user.
type fakeNotifier struct {
	mu      sync.Mutex
	created []models.Notification
	failFor map[string]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{failFor: make(map[string]error)}
}

func (f *fakeNotifier) Create(ctx context.Context, notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[notification.UserID.Hex()]; ok {
		return err
	}
	f.created = append(f.created, *notification)
	return nil
}

func (f *fakeNotifier) Created() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.created))
	copy(out, f.created)
	return out
}

func TestNewProcessor(t *testing.T) {
	queue := NewMemoryQueue(10)
	admins := &fakeAdminFinder{}
	notifier := newFakeNotifier()

	processor := NewProcessor(queue, admins, notifier, 2)

	assert.NotNil(t, processor)
	assert.Equal(t, queue, processor.queue)
	assert.Equal(t, admins, processor.admins)
	assert.Equal(t, notifier, processor.notifier)
	assert.Equal(t, 2, processor.workerCount)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		processor := NewProcessor(queue, &fakeAdminFinder{}, newFakeNotifier(), 3)

		ctx := context.Background()
		processor.Start(ctx)

		// Give workers time to start
		time.Sleep(50 * time.Millisecond)

		// Stop should complete without hanging
		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		processor := NewProcessor(queue, &fakeAdminFinder{}, newFakeNotifier(), 1)

		ctx := context.Background()
		processor.Start(ctx)

		// Multiple stops should not panic
		processor.Stop()
		processor.Stop()
		processor.Stop()
	})
}

func TestProcessor_ProcessJob(t *testing.T) {
	t.Run("notifies every admin about a submitted recipe", func(t *testing.T) {
		adminA := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
		adminB := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

		queue := NewMemoryQueue(10)
		admins := &fakeAdminFinder{admins: []models.User{adminA, adminB}}
		notifier := newFakeNotifier()
		processor := NewProcessor(queue, admins, notifier, 1)

		recipeID := primitive.NewObjectID()
		_ = queue.Enqueue(BroadcastJob{
			RecipeID:      recipeID,
			RecipeTitle:   "Masala Chai",
			SubmitterName: "Alice",
		})

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for job to be processed
		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		created := notifier.Created()
		require.Len(t, created, 2)

		recipients := map[string]bool{}
		for _, n := range created {
			recipients[n.UserID.Hex()] = true
			assert.Equal(t, "New Recipe Submitted!", n.Title)
			assert.Contains(t, n.Message, "Alice")
			assert.Contains(t, n.Message, "Masala Chai")
			assert.Equal(t, "/admin/recipes/pending", n.Link)
			assert.Equal(t, models.NotificationTypeAdmin, n.Type)
		}
		assert.True(t, recipients[adminA.ID.Hex()])
		assert.True(t, recipients[adminB.ID.Hex()])
	})

	t.Run("skips a failing admin and delivers to the rest", func(t *testing.T) {
		adminA := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
		adminB := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

		queue := NewMemoryQueue(10)
		admins := &fakeAdminFinder{admins: []models.User{adminA, adminB}}
		notifier := newFakeNotifier()
		notifier.failFor[adminA.ID.Hex()] = assert.AnError
		processor := NewProcessor(queue, admins, notifier, 1)

		_ = queue.Enqueue(BroadcastJob{
			RecipeID:      primitive.NewObjectID(),
			RecipeTitle:   "Shakshuka",
			SubmitterName: "Bob",
		})

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		created := notifier.Created()
		require.Len(t, created, 1)
		assert.Equal(t, adminB.ID, created[0].UserID)
	})

	t.Run("retries when admin lookup fails", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		admins := &fakeAdminFinder{err: assert.AnError}
		notifier := newFakeNotifier()
		processor := NewProcessor(queue, admins, notifier, 1)

		_ = queue.Enqueue(BroadcastJob{
			RecipeID:   primitive.NewObjectID(),
			RetryCount: 0,
		})

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		// Lookup was attempted, nothing delivered, retry scheduled with backoff
		assert.GreaterOrEqual(t, admins.Calls(), 1)
		assert.Empty(t, notifier.Created())
	})

	t.Run("drops job after max retries", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		admins := &fakeAdminFinder{err: assert.AnError}
		notifier := newFakeNotifier()
		processor := NewProcessor(queue, admins, notifier, 1)

		_ = queue.Enqueue(BroadcastJob{
			RecipeID:   primitive.NewObjectID(),
			RetryCount: MaxRetries - 1, // One more failure will trigger max retries
		})

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		time.Sleep(200 * time.Millisecond)

		cancel()
		processor.Stop()

		assert.Equal(t, 1, admins.Calls())
		assert.Equal(t, 0, queue.Len())
	})
}

func TestProcessor_HandleFailure(t *testing.T) {
	t.Run("uses exponential backoff", func(t *testing.T) {
		// RetryDelay * 2^(retryCount-1)
		delays := []time.Duration{
			RetryDelay * time.Duration(1<<0), // 5s
			RetryDelay * time.Duration(1<<1), // 10s
			RetryDelay * time.Duration(1<<2), // 20s
		}

		assert.Equal(t, 5*time.Second, delays[0])
		assert.Equal(t, 10*time.Second, delays[1])
		assert.Equal(t, 20*time.Second, delays[2])
	})
}

func TestProcessor_WorkerShutdown(t *testing.T) {
	t.Run("workers shut down gracefully on context cancel", func(t *testing.T) {
		queue := NewMemoryQueue(10)
		processor := NewProcessor(queue, &fakeAdminFinder{}, newFakeNotifier(), 3)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Give workers time to start
		time.Sleep(50 * time.Millisecond)

		cancel()

		// Stop should complete quickly
		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Fatal("Graceful shutdown timed out")
		}
	})
}

func TestProcessor_Concurrent(t *testing.T) {
	t.Run("processes multiple jobs concurrently", func(t *testing.T) {
		admin := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

		queue := NewMemoryQueue(100)
		admins := &fakeAdminFinder{admins: []models.User{admin}}
		notifier := newFakeNotifier()
		processor := NewProcessor(queue, admins, notifier, 5)

		jobCount := 10
		for i := 0; i < jobCount; i++ {
			_ = queue.Enqueue(BroadcastJob{
				RecipeID:      primitive.NewObjectID(),
				RecipeTitle:   "Masala Chai",
				SubmitterName: "Alice",
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)

		// Wait for all jobs to be processed
		time.Sleep(500 * time.Millisecond)

		cancel()
		processor.Stop()

		assert.Len(t, notifier.Created(), jobCount)
	})
}
