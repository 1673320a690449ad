package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"timekeeper/internal/domain"
)

// noTagID is the picker value meaning "no tag"
const noTagID int64 = 0

// TagPickerResult contains the outcome of the tag picker
type TagPickerResult struct {
	Cancelled bool
	Tag       *domain.Tag
}

// TagPickerForm is a Bubble Tea component for choosing a tag
type TagPickerForm struct {
	Completed bool
	form      *huh.Form
	result    TagPickerResult
	selected  int64
	tags      []domain.Tag
}

// NewTagPickerForm creates a picker over tags, preselecting current
func NewTagPickerForm(title string, tags []domain.Tag, current *domain.Tag) *TagPickerForm {
	tf := &TagPickerForm{tags: tags}
	if current != nil {
		tf.selected = current.ID
	}

	options := make([]huh.Option[int64], 0, len(tags)+1)
	options = append(options, huh.NewOption("(no tag)", noTagID))
	for _, tag := range tags {
		options = append(options, huh.NewOption(tag.Name, tag.ID))
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title(title).
				Options(options...).
				Value(&tf.selected),
		),
	)

	return tf
}

func (tf *TagPickerForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TagPickerForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		tf.result.Tag = tf.lookup(tf.selected)
		return tf, nil
	}

	return tf, cmd
}

func (tf *TagPickerForm) View() string {
	if tf.form != nil {
		return tf.form.View()
	}
	return ""
}

// Result returns the form result
func (tf *TagPickerForm) Result() TagPickerResult {
	return tf.result
}

func (tf *TagPickerForm) lookup(id int64) *domain.Tag {
	for i := range tf.tags {
		if tf.tags[i].ID == id {
			tag := tf.tags[i]
			return &tag
		}
	}
	return nil
}

// NewTagResult contains the outcome of the new tag form
type NewTagResult struct {
	Cancelled bool
	Name      string
}

// NewTagForm is a Bubble Tea component for naming a new tag
type NewTagForm struct {
	Completed bool
	form      *huh.Form
	result    NewTagResult
}

// NewNewTagForm creates the new tag form
func NewNewTagForm() *NewTagForm {
	nf := &NewTagForm{}

	nf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New tag").
				Placeholder("Deep work").
				CharLimit(64).
				Value(&nf.result.Name).
				Validate(func(s string) error {
					_, err := domain.NormalizeTagName(s)
					return err
				}),
		),
	)

	return nf
}

func (nf *NewTagForm) Init() tea.Cmd {
	return nf.form.Init()
}

func (nf *NewTagForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			nf.result.Cancelled = true
			nf.Completed = true
			return nf, nil
		}
	}

	form, cmd := nf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		nf.form = f
	}

	if nf.form.State == huh.StateCompleted {
		nf.Completed = true
		return nf, nil
	}

	return nf, cmd
}

func (nf *NewTagForm) View() string {
	if nf.form != nil {
		return nf.form.View()
	}
	return ""
}

// Result returns the form result
func (nf *NewTagForm) Result() NewTagResult {
	return nf.result
}
