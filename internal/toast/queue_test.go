package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowThenHideLeavesEmptyQueue(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	id := q.Show("Thanh toán thành công", KindSuccess, time.Minute)
	require.Equal(t, 1, q.Len())

	q.Hide(id)
	assert.Empty(t, q.List())

	// idempotent
	q.Hide(id)
	assert.Empty(t, q.List())
}

func TestToastExpiresAfterDurationAndNotBefore(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Show("Đang xử lý", KindInfo, 80*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, q.Len(), "toast removed before its duration")

	assert.Eventually(t, func() bool { return q.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInsertionOrderAndNoDeduplication(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	first := q.Show("Lỗi", KindError, time.Minute)
	second := q.Show("Lỗi", KindError, time.Minute)
	third := q.Warning("Cảnh báo")

	items := q.List()
	require.Len(t, items, 3)
	assert.Equal(t, []string{first, second, third}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.NotEqual(t, first, second)
}

func TestDefaultsApplied(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Show("x", Kind("bogus"), 0)

	items := q.List()
	require.Len(t, items, 1)
	assert.Equal(t, KindInfo, items[0].Kind)
	assert.Equal(t, DefaultDuration, items[0].ExpiresAt.Sub(items[0].CreatedAt))
}

func TestCloseDropsEverything(t *testing.T) {
	q := NewQueue()
	q.Success("a")
	q.Error("b")

	q.Close()
	assert.Empty(t, q.List())

	q.Info("after close")
	assert.Empty(t, q.List())
}
