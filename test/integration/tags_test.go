package integration_test

import (
	"testing"

	"timekeeper/test/integration/harness"
)

func TestTags(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "tags")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No tags")

	result = harness.RunCommand(t, env, "tags", "add", "  Deep work ")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Created tag 'Deep work'")

	result = harness.RunCommand(t, env, "tags", "add", "Deep work")
	harness.AssertFailure(t, result)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "Email"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "rename", "Email", "Inbox"))

	result = harness.RunCommand(t, env, "tags", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Deep work\nInbox\n")
}

func TestTagsDel(t *testing.T) {
	t.Run("declined confirmation keeps the tag", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "Focus"))

		result := harness.RunCommandWithInput(t, env, "n\n", "tags", "del", "Focus")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Cancelled")

		result = harness.RunCommand(t, env, "tags")
		harness.AssertStdoutContains(t, result, "Focus")
	})

	t.Run("deleted tag stays on its blocks until purged", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "Focus"))
		harness.AssertSuccess(t, harness.RunCommand(t, env, "start", "-t", "Focus"))
		harness.AssertSuccess(t, harness.RunCommand(t, env, "stop"))

		result := harness.RunCommand(t, env, "tags", "del", "-f", "Focus")
		harness.AssertSuccess(t, result)

		result = harness.RunCommand(t, env, "tags")
		harness.AssertStdoutContains(t, result, "No tags")

		result = harness.RunCommand(t, env, "blocks")
		harness.AssertStdoutContains(t, result, "Focus")

		result = harness.RunCommand(t, env, "tags", "purge")
		harness.AssertStdoutContains(t, result, "Purged 0 tag(s)")

		harness.AssertSuccess(t, harness.RunCommand(t, env, "blocks", "retag", "1", "--clear"))
		result = harness.RunCommand(t, env, "tags", "purge")
		harness.AssertStdoutContains(t, result, "Purged 1 tag(s)")
	})

	t.Run("unknown tag fails", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "tags", "del", "-f", "nope")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "tag not found")
	})
}
