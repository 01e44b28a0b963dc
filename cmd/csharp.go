/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/autowrap/translate/csharp"
	"github.com/autowrap/translate/internal/irdoc"
	"github.com/autowrap/translate/ir"
	"github.com/spf13/cobra"
)

func newCSharpCmd() *cobra.Command {
	csharpCmd := &cobra.Command{
		Use:   "csharp IR_FILE",
		Short: "Generate an MSTest C# test class",
		Long: `Decode an IR test suite from a JSON or YAML document and emit a C# file with
one test method per test. Use "-" to read the document from stdin.
The result goes to stdout or, via -o/--output, to a file that is only
created when the whole suite translated successfully.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			opts, err := csharpOptions(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			suite, err := readSuite(cmd, args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded IR", "input", args[0], "tests", len(suite.Tests))

			if outputPath != "" {
				if err := csharp.WriteFile(outputPath, suite, opts); err != nil {
					return err
				}
				logger.Debug("wrote C# file", "output", outputPath)
				return nil
			}

			content, err := csharp.Generate(suite, opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}

	csharpCmd.Flags().StringP("output", "o", "", "write the generated C# to a file")
	csharpCmd.Flags().StringP("format", "f", "", "IR document format: json or yaml (default: from the file extension)")
	csharpCmd.Flags().String("namespace", csharp.DefaultNamespace, "namespace of the generated class")
	csharpCmd.Flags().String("class", csharp.DefaultClassName, "name of the generated test class")
	csharpCmd.Flags().String("framework", csharp.DefaultFrameworkNamespace, "namespace of the test framework attributes")
	csharpCmd.Flags().StringSlice("exclude", csharp.DefaultExcludedModules, "modules that never get a using directive")
	return csharpCmd
}

func csharpOptions(cmd *cobra.Command) (csharp.GenerateOptions, error) {
	flags := cmd.Flags()

	namespace, err := flags.GetString("namespace")
	if err != nil {
		return csharp.GenerateOptions{}, err
	}
	className, err := flags.GetString("class")
	if err != nil {
		return csharp.GenerateOptions{}, err
	}
	framework, err := flags.GetString("framework")
	if err != nil {
		return csharp.GenerateOptions{}, err
	}
	excluded, err := flags.GetStringSlice("exclude")
	if err != nil {
		return csharp.GenerateOptions{}, err
	}

	return csharp.GenerateOptions{
		Namespace:          namespace,
		ClassName:          className,
		FrameworkNamespace: framework,
		ExcludedModules:    append([]string{}, excluded...),
	}, nil
}

func readSuite(cmd *cobra.Command, input string) (ir.TestSuite, error) {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return ir.TestSuite{}, err
	}

	var format irdoc.Format
	if formatFlag != "" {
		if format, err = irdoc.ParseFormat(formatFlag); err != nil {
			return ir.TestSuite{}, err
		}
	}

	if input == "-" {
		if format == "" {
			format = irdoc.FormatJSON
		}
		return irdoc.Decode(cmd.InOrStdin(), format)
	}
	return irdoc.DecodeFile(input, format)
}
