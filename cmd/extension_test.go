package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	// 1. Create a temporary directory
	tempDir := t.TempDir()

	// 2. Create chartctl-hello executable
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%q\n", os.Args[1:])
}
`, EnvCurrency, EnvCurrency, EnvWidth, EnvWidth, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "chartctl-hello")

	// Write source to a temporary file
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write chartctl-hello source: %v", err)
	}

	// Compile chartctl-hello
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile chartctl-hello: %v", err)
	}
	log.Printf("Compiled chartctl-hello to %s", helloCmdPath)

	// 3. Compile the main chartctl binary
	binaryPath := filepath.Join(tempDir, "chartctl")
	cmd = exec.Command("go", "build", "-o", binaryPath, "../chartctl")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile chartctl binary: %v", err)
	}

	// Define random values for global flags
	expectedCurrency := "XYZ"
	expectedWidth := 480.5
	expectedVerbose := true

	// 4. Call chartctl binary with extension and global flags
	args := []string{
		"--currency", expectedCurrency,
		"--width", strconv.FormatFloat(expectedWidth, 'f', -1, 64),
		"-v",
		"hello", // The extension subcommand
		"world",
	}

	c := exec.Command(binaryPath, args...)
	c.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		t.Fatalf("chartctl command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	// 5. Verify output
	output := stdout.String()

	expectedLines := []string{
		EnvCurrency + "=" + expectedCurrency,
		EnvWidth + "=" + strconv.FormatFloat(expectedWidth, 'f', -1, 64),
		EnvVerbose + "=" + strconv.FormatBool(expectedVerbose),
		`args=["world"]`,
	}
	for _, expectedLine := range expectedLines {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}

	if stderr.Len() > 0 {
		t.Logf("Stderr from chartctl command: %s", stderr.String())
	}
}
