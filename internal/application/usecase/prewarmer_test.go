package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photovault/internal/domain/repository/broker"
)

type fakeMessage struct {
	body string

	mu    sync.Mutex
	acked bool
}

func (m *fakeMessage) Body() string { return m.body }

func (m *fakeMessage) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked = true

	return nil
}

func (m *fakeMessage) Nack() error { return nil }

func (m *fakeMessage) wasAcked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acked
}

type fakeReceiver struct {
	ch chan broker.Message
}

func (r *fakeReceiver) Messages(_ context.Context, _ string) (<-chan broker.Message, error) {
	return r.ch, nil
}

func TestPrewarmerGeneratesThumbnails(t *testing.T) {
	t.Parallel()
	f := newThumbnailerFixture()

	id := storePhoto(f.photoDB, f.objStore, "v1", jpegPayload(512))

	receiver := &fakeReceiver{ch: make(chan broker.Message, 2)}
	msg := &fakeMessage{body: id}
	gone := &fakeMessage{body: uuid.New().String()}
	receiver.ch <- msg
	receiver.ch <- gone
	close(receiver.ch)

	prewarmer := NewPrewarmer(receiver, f.thumbnailer, 200)
	require.NoError(t, prewarmer.Run(context.Background(), "test-consumer"))

	_, err := f.thumbDB.GetByID(context.Background(), thumbnailID(id, 200))
	assert.NoError(t, err, "thumbnail must be prewarmed")

	assert.True(t, msg.wasAcked())
	assert.True(t, gone.wasAcked(), "events for deleted photos are acked, not retried")
}

func TestPrewarmerStopsWhenChannelCloses(t *testing.T) {
	t.Parallel()
	f := newThumbnailerFixture()

	receiver := &fakeReceiver{ch: make(chan broker.Message)}
	prewarmer := NewPrewarmer(receiver, f.thumbnailer, 200)

	done := make(chan error, 1)
	go func() {
		done <- prewarmer.Run(context.Background(), "test-consumer")
	}()

	close(receiver.ch)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("prewarmer did not stop after channel close")
	}
}
