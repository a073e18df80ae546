package finder

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// OpenURL opens a URL with the system default handler.
func OpenURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// CopyText writes text to the system clipboard.
func CopyText(text string) error {
	tool, err := clipboardTool()
	if err != nil {
		return err
	}

	cmd := exec.Command(tool[0], tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// clipboardTool picks the platform clipboard writer.
func clipboardTool() ([]string, error) {
	switch runtime.GOOS {
	case "darwin":
		return []string{"pbcopy"}, nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return []string{"xclip", "-selection", "clipboard"}, nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return []string{"xsel", "--clipboard", "--input"}, nil
		}
		return nil, fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case "windows":
		return []string{"cmd", "/c", "clip"}, nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// clipboardCommandLine builds the shell pipeline used by the fzf ctrl-c
// binding, with placeholder standing in for the URL field.
func clipboardCommandLine(placeholder string) (string, error) {
	tool, err := clipboardTool()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("echo %s | %s", placeholder, strings.Join(tool, " ")), nil
}
