package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/uthealth/hpvco/config"
	"github.com/uthealth/hpvco/enrich"
	"github.com/uthealth/hpvco/export"
	"github.com/uthealth/hpvco/fetch"
	"github.com/uthealth/hpvco/ontology"
	"github.com/uthealth/hpvco/rdf"
	"github.com/uthealth/hpvco/rdfxml"
	"github.com/uthealth/hpvco/validate"
)

// buildLoader wires a Loader from toolkit config.
func buildLoader(cfg *config.Config) *ontology.Loader {
	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithRetries(cfg.Fetch.Retries),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
		fetch.WithAllowLocal(cfg.Fetch.AllowLocal),
	)
	validator := validate.New(
		validate.WithExternalNamespaces(cfg.Validation.ExternalNamespaces...),
	)
	return ontology.NewLoader(
		ontology.WithFetcher(fetcher),
		ontology.WithValidator(validator),
		ontology.WithLogger(slog.Default()),
	)
}

// resolveSource decides where to load the document from: an explicit
// argument wins, then the first local glob match, then the configured URL.
// The second return value is true when the source is a URL.
func resolveSource(cfg *config.Config, arg string) (string, bool, error) {
	if arg != "" {
		return arg, isURL(arg), nil
	}

	for _, pattern := range cfg.Ontology.LocalGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return "", false, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], false, nil
		}
	}

	if cfg.Ontology.URL == "" {
		return "", false, fmt.Errorf("no ontology source configured")
	}
	return cfg.Ontology.URL, true, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// loadOntology resolves the source and runs the full load lifecycle.
func loadOntology(ctx context.Context, cfg *config.Config, arg string) (*ontology.Ontology, error) {
	source, remote, err := resolveSource(cfg, arg)
	if err != nil {
		return nil, err
	}
	loader := buildLoader(cfg)
	if remote {
		return loader.LoadURL(ctx, source)
	}
	return loader.LoadFile(source)
}

// ----------------------------------------------------------------------------
// hpvco fetch
// ----------------------------------------------------------------------------

func fetchCmd(opts *cliOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "Fetch the ontology document",
		Long: `Fetch retrieves the raw RDF/XML document from the permanent URL
(or the given URL) and writes it to stdout or a file. The document is
not parsed; use validate or stats for that.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}

			url := cfg.Ontology.URL
			if len(args) > 0 {
				url = args[0]
			}

			fetcher := fetch.New(
				fetch.WithTimeout(cfg.Fetch.Timeout),
				fetch.WithRetries(cfg.Fetch.Retries),
				fetch.WithUserAgent(cfg.Fetch.UserAgent),
				fetch.WithAllowLocal(cfg.Fetch.AllowLocal),
			)
			data, err := fetcher.Fetch(cmd.Context(), url)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			slog.Info("Fetched ontology document", "url", url, "bytes", len(data), "out", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the document to a file instead of stdout")
	return cmd
}

// ----------------------------------------------------------------------------
// hpvco validate
// ----------------------------------------------------------------------------

func validateCmd(opts *cliOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [path|url]",
		Short: "Validate the ontology against the supported OWL subset",
		Long: `Validate loads the document and reports schema violations:
undeclared references, malformed IRIs, unsupported OWL constructs, and
literal subjects. A malformed document is a parse error, not a
violation. Exit status is non-zero only when validate.fail_on_violations
is set and the validator found something.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			o, err := loadOntology(cmd.Context(), cfg, arg)
			if err != nil {
				return err
			}

			violations := o.Violations()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(violations); err != nil {
					return err
				}
			} else if len(violations) == 0 {
				fmt.Printf("OK: %d triples, no violations\n", o.Graph().Len())
			} else {
				for _, v := range violations {
					fmt.Printf("%s\t%s\t%s\n", v.Code, v.IRI, v.Message)
				}
				fmt.Printf("%d violation(s) in %d triples\n", len(violations), o.Graph().Len())
			}

			if cfg.Validation.FailOnViolations && len(violations) > 0 {
				return fmt.Errorf("%d schema violation(s)", len(violations))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit violations as JSON")
	return cmd
}

// ----------------------------------------------------------------------------
// hpvco lookup
// ----------------------------------------------------------------------------

func lookupCmd(opts *cliOptions) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "lookup <iri-or-label>",
		Short: "Look up a class or property by IRI or label",
		Long: `Lookup resolves the argument first as a class IRI, then as a
property IRI, then as a case-insensitive label or synonym. The matched
entity is printed as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}

			o, err := loadOntology(cmd.Context(), cfg, source)
			if err != nil {
				return err
			}

			query := args[0]
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if c, err := o.Class(query); err == nil {
				return enc.Encode(c)
			}
			if p, err := o.Property(query); err == nil {
				return enc.Encode(p)
			}

			iris, err := o.ByLabel(query)
			if err != nil {
				if errors.Is(err, rdf.ErrNotFound) {
					return fmt.Errorf("no class, property, or label matches %q", query)
				}
				return err
			}
			return enc.Encode(iris)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Document path or URL (defaults to configured source)")
	return cmd
}

// ----------------------------------------------------------------------------
// hpvco stats
// ----------------------------------------------------------------------------

func statsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [path|url]",
		Short: "Print document identity and summary statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			o, err := loadOntology(cmd.Context(), cfg, arg)
			if err != nil {
				return err
			}

			out := struct {
				Document ontology.Document `json:"document"`
				Stats    ontology.Stats    `json:"stats"`
			}{o.Document(), o.Stats()}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	return cmd
}

// ----------------------------------------------------------------------------
// hpvco enrich
// ----------------------------------------------------------------------------

func enrichCmd(opts *cliOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "enrich <path>",
		Short: "Migrate legacy seeAlso/comment annotations to NCIT axioms",
		Long: `Enrich rewrites classes that carry the legacy annotation
convention (NCIT code in rdfs:seeAlso, synonym and definition packed
into rdfs:comment) into hasSynonym and IAO definition assertions, each
annotated with an owl:Axiom carrying the NCIT cross-reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			g, err := rdfxml.ParseBytes(data)
			if err != nil {
				return err
			}

			migrated, n := enrich.Migrate(g)
			slog.Info("Migration complete",
				"classes_migrated", n,
				"triples_before", g.Len(),
				"triples_after", migrated.Len())

			var sb strings.Builder
			if err := rdfxml.Write(&sb, migrated); err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Print(sb.String())
				return err
			}
			return os.WriteFile(out, []byte(sb.String()), 0644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the migrated document to a file instead of stdout")
	return cmd
}

// ----------------------------------------------------------------------------
// hpvco export
// ----------------------------------------------------------------------------

func exportCmd(opts *cliOptions) *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export [path|url]",
		Short: "Export the ontology in another RDF serialization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolkitConfig(opts)
			if err != nil {
				return err
			}

			var f export.Format
			switch strings.ToLower(format) {
			case "turtle", "ttl":
				f = export.FormatTurtle
			case "ntriples", "nt":
				f = export.FormatNTriples
			case "jsonld", "json-ld":
				f = export.FormatJSONLD
			case "rdfxml", "rdf", "xml":
				f = export.FormatRDFXML
			default:
				return fmt.Errorf("unknown format %q (supported: turtle, ntriples, jsonld, rdfxml)", format)
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			o, err := loadOntology(cmd.Context(), cfg, arg)
			if err != nil {
				return err
			}

			output, err := export.Serialize(o.Graph(), f)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Print(output)
				return err
			}
			return os.WriteFile(out, []byte(output), 0644)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format (turtle, ntriples, jsonld, rdfxml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the serialization to a file instead of stdout")
	return cmd
}
