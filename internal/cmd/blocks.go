package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/services"
)

// BlocksCmd manages time blocks
type BlocksCmd struct {
	Del   BlocksDelCmd   `cmd:"del" help:"Delete a block"`
	List  BlocksListCmd  `cmd:"list" help:"List the blocks of a day" default:"1"`
	Retag BlocksRetagCmd `cmd:"retag" help:"Change or clear the tag of a block"`
}

// BlocksListCmd lists the blocks of a day
type BlocksListCmd struct {
	Date string `help:"Day to list (YYYY-MM-DD, default today)"`
}

// Run executes the list command
func (b *BlocksListCmd) Run(container *Container) error {
	day, err := parseDay(b.Date)
	if err != nil {
		return err
	}

	dayBlock, err := container.HistoryService.BlocksInDay(context.Background(), day)
	if err != nil {
		return err
	}

	if len(dayBlock.Blocks) == 0 {
		fmt.Println("No blocks")
		return nil
	}
	printBlocks(os.Stdout, dayBlock.Blocks, container.Settings.GetTimeFormat())
	return nil
}

// BlocksRetagCmd changes the tag of a block
type BlocksRetagCmd struct {
	Clear bool   `help:"Remove the tag" xor:"tag"`
	ID    int64  `arg:"" help:"Block id"`
	Tag   string `help:"Name of the new tag" short:"t" xor:"tag"`
}

// Run executes the retag command
func (b *BlocksRetagCmd) Run(container *Container) error {
	if !b.Clear && b.Tag == "" {
		return errors.New("either --tag or --clear is required")
	}

	block, err := container.BlockService.Retag(context.Background(), services.RetagParams{
		BlockID: b.ID,
		Clear:   b.Clear,
		TagName: b.Tag,
	})
	if err != nil {
		return err
	}

	if block.Tag == nil {
		fmt.Printf("Cleared tag of block %d\n", block.ID)
	} else {
		fmt.Printf("Tagged block %d with '%s'\n", block.ID, block.Tag.Name)
	}
	return nil
}

// BlocksDelCmd deletes a block
type BlocksDelCmd struct {
	Force bool  `help:"Force deletion without confirmation" short:"f"`
	ID    int64 `arg:"" help:"Block id"`
}

// Run executes the del command
func (b *BlocksDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing blocks del command", "block", b.ID, "force", b.Force)
	ctx := context.Background()

	block, err := container.BlockService.Get(ctx, b.ID)
	if err != nil {
		return err
	}

	if !b.Force && !confirm(fmt.Sprintf("WARNING: This will delete block %d (%s, %s)",
		block.ID, block.Start.Format(container.Settings.GetDateFormat()+" "+container.Settings.GetTimeFormat()),
		domain.FormatDuration(block.Duration()))) {
		return nil
	}

	if err := container.BlockService.Delete(ctx, b.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted block %d\n", b.ID)
	return nil
}

// confirm asks a yes/no question on stdin, defaulting to no
func confirm(warning string) bool {
	fmt.Println(warning)
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled")
		fmt.Println("Cancelled")
		return false
	}
	return true
}
