package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordToggle(t *testing.T) {
	before := testutil.ToFloat64(InteractionToggles.WithLabelValues("like", "on"))
	RecordToggle("like", true)
	assert.Equal(t, before+1, testutil.ToFloat64(InteractionToggles.WithLabelValues("like", "on")))
}

func TestRecordModeration(t *testing.T) {
	ok := testutil.ToFloat64(ModerationActions.WithLabelValues("ban_recipe", "success"))
	failed := testutil.ToFloat64(ModerationActions.WithLabelValues("ban_recipe", "failure"))

	RecordModeration("ban_recipe", nil)
	RecordModeration("ban_recipe", errors.New("db down"))

	assert.Equal(t, ok+1, testutil.ToFloat64(ModerationActions.WithLabelValues("ban_recipe", "success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(ModerationActions.WithLabelValues("ban_recipe", "failure")))
}
