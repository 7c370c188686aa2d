package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/checklist"
)

func TestParse(t *testing.T) {
	text := "Plan:\n- [x] outline\n  - [ ] draft\n* [X] review\n\n```\n- [ ] not a task\n```\nsee `- [ ] inline`"

	items := checklist.Parse(text)
	assert.Equal(t, []checklist.Item{
		{Text: "outline", Checked: true},
		{Text: "draft", Checked: false},
		{Text: "review", Checked: true},
	}, items)
}

func TestSummarize(t *testing.T) {
	s := checklist.Summarize("- [x] a\n- [ ] b\n- [ ] c\n- [x] d")
	assert.Equal(t, checklist.Stats{Total: 4, Completed: 2}, s)
	assert.Equal(t, 50, s.Percent())
	assert.False(t, s.Empty())

	empty := checklist.Summarize("just prose")
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Percent())
}
