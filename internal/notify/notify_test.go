package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomotray/internal/core/model"
)

func TestCompletionCopy(t *testing.T) {
	cases := []struct {
		completed model.SessionKind
		next      model.SessionKind
		title     string
	}{
		{model.KindWork, model.KindShortBreak, "Focus session complete"},
		{model.KindWork, model.KindLongBreak, "Focus session complete"},
		{model.KindShortBreak, model.KindWork, "Break over"},
		{model.KindLongBreak, model.KindWork, "Long break over"},
	}
	for _, tc := range cases {
		title, body := completionCopy(tc.completed, tc.next)
		assert.Equal(t, tc.title, title)
		assert.NotEmpty(t, body)
	}
}

func TestLongBreakGetsDistinctBody(t *testing.T) {
	_, short := completionCopy(model.KindWork, model.KindShortBreak)
	_, long := completionCopy(model.KindWork, model.KindLongBreak)
	assert.NotEqual(t, short, long)
}
