package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	SetLevel(slog.LevelDebug)
	SetSections("analysis.members")
	defer func() {
		SetLevel(slog.LevelWarn)
		SetSections("analysis")
	}()

	var buf bytes.Buffer
	l := New(&buf)

	Section(l, "analysis.members").Debug("kept")
	Section(l, "analysis.registration").Debug("filtered")
	Section(l, "analysis.registration").Warn("warned")
	l.Debug("tagged", "section", "analysis.members.builtin")
	l.Debug("untagged")

	out := buf.String()
	assert.Contains(t, out, "msg=kept")
	assert.NotContains(t, out, "msg=filtered")
	assert.Contains(t, out, "msg=warned")
	assert.Contains(t, out, "msg=tagged")
	assert.NotContains(t, out, "msg=untagged")
	assert.NotContains(t, out, "time=")
}

func TestLevel(t *testing.T) {
	SetLevel(slog.LevelError)
	defer SetLevel(slog.LevelWarn)

	var buf bytes.Buffer
	Section(New(&buf), "analysis").Warn("quiet")
	assert.Empty(t, buf.String())
}

func TestStateAccessors(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Level())
	assert.Equal(t, []string{"analysis"}, Sections())

	SetLevel(slog.LevelInfo)
	SetSections("a", "b")
	defer func() {
		SetLevel(slog.LevelWarn)
		SetSections("analysis")
	}()
	assert.Equal(t, slog.LevelInfo, Level())
	sections := Sections()
	assert.Equal(t, []string{"a", "b"}, sections)

	sections[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, Sections())
}
