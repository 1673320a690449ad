package cmd

import (
	"context"
	"fmt"

	"timekeeper/internal/logging"
)

// TagsCmd manages tags
type TagsCmd struct {
	Add    TagsAddCmd    `cmd:"add" help:"Create a tag"`
	Del    TagsDelCmd    `cmd:"del" help:"Delete a tag (blocks keep it)"`
	List   TagsListCmd   `cmd:"list" help:"List tags" default:"1"`
	Purge  TagsPurgeCmd  `cmd:"purge" help:"Remove deleted tags no block uses any more"`
	Rename TagsRenameCmd `cmd:"rename" help:"Rename a tag"`
}

// TagsListCmd lists tags
type TagsListCmd struct{}

// Run executes the list command
func (t *TagsListCmd) Run(container *Container) error {
	tags, err := container.TagService.List(context.Background())
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Println("No tags")
		return nil
	}
	for _, tag := range tags {
		fmt.Println(tag.Name)
	}
	return nil
}

// TagsAddCmd creates a tag
type TagsAddCmd struct {
	Name string `arg:"" help:"Tag name"`
}

// Run executes the add command
func (t *TagsAddCmd) Run(container *Container) error {
	tag, err := container.TagService.Create(context.Background(), t.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Created tag '%s'\n", tag.Name)
	return nil
}

// TagsRenameCmd renames a tag
type TagsRenameCmd struct {
	Name    string `arg:"" help:"Current tag name"`
	NewName string `arg:"" help:"New tag name"`
}

// Run executes the rename command
func (t *TagsRenameCmd) Run(container *Container) error {
	if err := container.TagService.Rename(context.Background(), t.Name, t.NewName); err != nil {
		return err
	}
	fmt.Printf("Renamed tag '%s' to '%s'\n", t.Name, t.NewName)
	return nil
}

// TagsDelCmd deletes a tag
type TagsDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Tag name"`
}

// Run executes the del command
func (t *TagsDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing tags del command", "tag", t.Name, "force", t.Force)

	if !t.Force && !confirm(fmt.Sprintf("WARNING: This will delete tag '%s'. Blocks tagged with it keep the tag.", t.Name)) {
		return nil
	}

	if err := container.TagService.Delete(context.Background(), t.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted tag '%s'\n", t.Name)
	return nil
}

// TagsPurgeCmd removes deleted, unused tags
type TagsPurgeCmd struct{}

// Run executes the purge command
func (t *TagsPurgeCmd) Run(container *Container) error {
	count, err := container.TagService.Purge(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Purged %d tag(s)\n", count)
	return nil
}
