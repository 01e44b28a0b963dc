package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autowrap/translate/internal/irdoc"
	"github.com/autowrap/translate/internal/test"
	"github.com/google/go-cmp/cmp"
)

// execute runs a fresh command tree with args and returns what it wrote to
// stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCSharpCommandWritesFile(t *testing.T) {
	for _, name := range test.Archives(t, "csharp") {
		t.Run(filepath.Base(name), func(t *testing.T) {
			ar := test.ReadArchive(t, name)
			dir := t.TempDir()

			var input string
			for _, f := range ar.Files {
				if strings.HasPrefix(f.Name, "suite.") {
					input = filepath.Join(dir, f.Name)
					if err := os.WriteFile(input, f.Data, 0o600); err != nil {
						t.Fatal(err)
					}
				}
			}
			if input == "" {
				t.Fatalf("%s has no suite file", name)
			}

			outputPath := filepath.Join(dir, "TestMain.cs")
			if _, _, err := execute(t, nil, "csharp", "--output", outputPath, input); err != nil {
				t.Fatalf("execute failed: %v", err)
			}

			got, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatal(err)
			}
			want := string(test.ArchiveFile(t, ar, "want.cs"))
			if diff := cmp.Diff(want, string(got)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCSharpCommandStdinToStdout(t *testing.T) {
	ar := test.ReadArchive(t, "csharp/yaml.txtar")
	stdin := bytes.NewReader(test.ArchiveFile(t, ar, "suite.yaml"))

	got, _, err := execute(t, stdin, "csharp", "--format", "yaml", "-")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := string(test.ArchiveFile(t, ar, "want.cs"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCSharpCommandRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "suite.json")
	doc := `{"tests": [{"name": "t", "statements": [{"kind": "Lambda"}]}]}`
	if err := os.WriteFile(input, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	outputPath := filepath.Join(dir, "TestMain.cs")

	_, _, err := execute(t, nil, "csharp", "--output", outputPath, input)
	if !errors.Is(err, irdoc.ErrInvalidDocument) {
		t.Fatalf("execute error = %v, want %v", err, irdoc.ErrInvalidDocument)
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("output file exists after a failed run: %v", err)
	}
}

func TestCSharpCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, strings.NewReader("{}"), "csharp", "--format", "toml", "-")
	if err == nil || !strings.Contains(err.Error(), `unsupported IR format "toml"`) {
		t.Fatalf("execute error = %v, want unsupported format", err)
	}
}

func TestCSharpCommandMapsFlags(t *testing.T) {
	doc := `{"tests": [{"name": "test_dates", "statements": [
		{"kind": "Import", "module": "datetime"},
		{"kind": "Import", "module": "json"},
		{"kind": "Assignment", "lhs": "x", "rhs": 1}
	]}]}`

	got, logs, err := execute(t, strings.NewReader(doc),
		"csharp", "-v",
		"--namespace", "My.Tests",
		"--class", "Generated",
		"--framework", "NUnit.Framework",
		"--exclude", "json",
		"-")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := `// this file is autogenerated, do not modify by hand
namespace My.Tests
{
    using Datetime;
    using NUnit.Framework;

    [NUnit.Framework.TestClass]
    public class Generated
    {
        [NUnit.Framework.TestMethod]
        public void test_dates()
        {
            // var x = 1;
        }
    }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs, "decoded IR") || !strings.Contains(logs, "tests=1") {
		t.Fatalf("verbose run did not log decoding, stderr:\n%s", logs)
	}
}

func TestCSharpCommandFlagsDoNotLeak(t *testing.T) {
	doc := `{"tests": [{"name": "test_dates", "statements": [{"kind": "Import", "module": "datetime"}]}]}`

	first, _, err := execute(t, strings.NewReader(doc), "csharp", "--exclude", "json", "--class", "Other", "-")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(first, "using Datetime;") {
		t.Fatalf("--exclude json still dropped datetime:\n%s", first)
	}

	second, logs, err := execute(t, strings.NewReader(doc), "csharp", "-")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if strings.Contains(second, "Datetime") || strings.Contains(second, "class Other") {
		t.Fatalf("flags from an earlier run leaked into a later one:\n%s", second)
	}
	if logs != "" {
		t.Fatalf("quiet run logged to stderr:\n%s", logs)
	}
}
