package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wishlist/internal/database"
)

// run executes the command line against dbPath and returns stdout.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", dbPath, "--log-level", "silent"}, args...))

	err := root.Execute()
	return out.String(), err
}

func testDBPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "wishlist.db")
}

func TestInitCommand(t *testing.T) {
	dbPath := testDBPath(t)

	out, err := run(t, dbPath, "init")
	require.NoError(t, err)
	assert.Contains(t, out, dbPath)

	// Running again is harmless
	_, err = run(t, dbPath, "init")
	require.NoError(t, err)
}

func TestAddAndListCommands(t *testing.T) {
	dbPath := testDBPath(t)

	out, err := run(t, dbPath, "add", "--title", "Dune", "--author", "Frank Herbert")
	require.NoError(t, err)
	assert.Equal(t, "Added id: 1 Title: Dune Author: Frank Herbert Read: no\n", out)

	out, err = run(t, dbPath, "add", "--title", "Solaris", "--author", "Stanislaw Lem", "--read")
	require.NoError(t, err)
	assert.Equal(t, "Added id: 2 Title: Solaris Author: Stanislaw Lem Read: yes\n", out)

	out, err = run(t, dbPath, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{
		"id: 1 Title: Dune Author: Frank Herbert Read: no",
		"id: 2 Title: Solaris Author: Stanislaw Lem Read: yes",
	}, lines)

	out, err = run(t, dbPath, "list", "--read")
	require.NoError(t, err)
	assert.Equal(t, "id: 2 Title: Solaris Author: Stanislaw Lem Read: yes\n", out)

	out, err = run(t, dbPath, "list", "--unread")
	require.NoError(t, err)
	assert.Equal(t, "id: 1 Title: Dune Author: Frank Herbert Read: no\n", out)
}

func TestAddCommand_RequiresTitleAndAuthor(t *testing.T) {
	_, err := run(t, testDBPath(t), "add", "--title", "Dune")
	assert.Error(t, err)
}

func TestListCommand_Empty(t *testing.T) {
	out, err := run(t, testDBPath(t), "list")
	require.NoError(t, err)
	assert.Equal(t, "No books\n", out)
}

func TestListCommand_FlagsAreExclusive(t *testing.T) {
	_, err := run(t, testDBPath(t), "list", "--read", "--unread")
	assert.Error(t, err)
}

func TestListCommand_Filter(t *testing.T) {
	assert.Equal(t, database.FilterAll, (&ListCommand{}).Filter())
	assert.Equal(t, database.FilterRead, (&ListCommand{ReadOnly: true}).Filter())
	assert.Equal(t, database.FilterUnread, (&ListCommand{UnreadOnly: true}).Filter())
}

func TestMarkCommand(t *testing.T) {
	dbPath := testDBPath(t)
	_, err := run(t, dbPath, "add", "--title", "Dune", "--author", "Frank Herbert")
	require.NoError(t, err)

	out, err := run(t, dbPath, "mark", "1")
	require.NoError(t, err)
	assert.Equal(t, "Marked book 1 as read\n", out)

	out, err = run(t, dbPath, "list", "--read")
	require.NoError(t, err)
	assert.Equal(t, "id: 1 Title: Dune Author: Frank Herbert Read: yes\n", out)

	out, err = run(t, dbPath, "mark", "1", "--unread")
	require.NoError(t, err)
	assert.Equal(t, "Marked book 1 as unread\n", out)

	out, err = run(t, dbPath, "list", "--unread")
	require.NoError(t, err)
	assert.Equal(t, "id: 1 Title: Dune Author: Frank Herbert Read: no\n", out)
}

func TestMarkCommand_NotFound(t *testing.T) {
	_, err := run(t, testDBPath(t), "mark", "100")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestMarkCommand_InvalidID(t *testing.T) {
	_, err := run(t, testDBPath(t), "mark", "abc")
	assert.ErrorContains(t, err, "invalid book id")
}

func TestRootCommand_UnknownLogLevel(t *testing.T) {
	root := NewRootCommand("test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--db", testDBPath(t), "--log-level", "loud", "list"})

	assert.ErrorContains(t, root.Execute(), "unknown log level")
}
