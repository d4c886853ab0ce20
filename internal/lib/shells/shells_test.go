package shells

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ImSingee/tt"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tt.AssertEqual(t, "foo", Quote("foo"))
	tt.AssertEqual(t, `'/opt/my app/main.js'`, Quote("/opt/my app/main.js"))
	tt.AssertEqual(t, `sh -c 'ls -al'`, Join([]string{"sh", "-c", "ls -al"}))
}

func TestArgv(t *testing.T) {
	argv, err := Argv("bash", "node --version")
	require.NoError(t, err)
	require.Equal(t, []string{"bash", "-c", "node --version"}, argv)

	argv, err = Argv("bash -l", "echo hi")
	require.NoError(t, err)
	require.Equal(t, []string{"bash", "-l", "-c", "echo hi"}, argv)

	argv, err = Argv("pwsh", "Get-Date")
	require.NoError(t, err)
	require.Equal(t, []string{"pwsh", "-Command", "Get-Date"}, argv)

	argv, err = Argv("cmd.exe", "ver")
	require.NoError(t, err)
	require.Equal(t, []string{"cmd.exe", "/d", "/s", "/c", "ver"}, argv)

	_, err = Argv(`bash "unterminated`, "x")
	require.Error(t, err)
}

func TestArgvExistingShellFile(t *testing.T) {
	shell := filepath.Join(t.TempDir(), "my shell")
	require.NoError(t, os.WriteFile(shell, nil, 0755))

	argv, err := Argv(shell, "echo hi")
	require.NoError(t, err)
	require.Equal(t, []string{shell, "-c", "echo hi"}, argv)
}

func TestArgvDefault(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix only")
	}

	argv, err := Argv("", "git --version")
	require.NoError(t, err)
	require.Equal(t, []string{"/bin/sh", "-c", "git --version"}, argv)
}

func TestQuoteProgram(t *testing.T) {
	tt.AssertEqual(t, "/opt/tools/tool-1.0", QuoteProgram("bash", "/opt/tools/tool-1.0"))
	tt.AssertEqual(t, `'/opt/My Tools/tool-1.0'`, QuoteProgram("bash -l", "/opt/My Tools/tool-1.0"))
	tt.AssertEqual(t, `'/opt/My Tools/tool-1.0'`, QuoteProgram("/bin/sh", "/opt/My Tools/tool-1.0"))

	tt.AssertEqual(t, `C:\tools\tool.exe`, QuoteProgram("cmd.exe", `C:\tools\tool.exe`))
	tt.AssertEqual(t, `"C:\Program Files\tool.exe"`, QuoteProgram("cmd", `C:\Program Files\tool.exe`))

	tt.AssertEqual(t, `& 'C:\Program Files\tool.exe'`, QuoteProgram("pwsh", `C:\Program Files\tool.exe`))
	tt.AssertEqual(t, `& 'C:\it''s\tool.exe'`, QuoteProgram("powershell.exe", `C:\it's\tool.exe`))
}
