// Command overlayinspect loads a scene file and reports shape statistics,
// picks shapes, and dumps the render and selection layers as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"visbio-overlays/internal/overlay"
	"visbio-overlays/internal/prefs"
	"visbio-overlays/internal/scene"
	"visbio-overlays/internal/selection"
	"visbio-overlays/internal/version"
)

const appName = "overlayinspect"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	app := cli.NewApp()
	app.Name = appName
	app.Version = version.Version
	app.Usage = "inspect image overlay scenes"
	app.Description = "Reads a TOML scene of overlay shapes and prints statistics, hit tests and selection layers."

	prefsFlag := cli.StringFlag{
		Name:  "prefs",
		Value: prefs.DefaultPath(),
		Usage: "Preferences file holding the selection style",
	}

	app.Commands = []cli.Command{
		{
			Name:      "stats",
			Aliases:   []string{"s"},
			Usage:     "Print the statistics of every shape",
			ArgsUsage: "<scene.toml>",
			Action: func(c *cli.Context) error {
				col, _, err := loadScene(c)
				if err != nil {
					return err
				}
				printStats(os.Stdout, col)
				return nil
			},
		},
		{
			Name:      "layers",
			Aliases:   []string{"l"},
			Usage:     "Dump the render and selection layers as JSON",
			ArgsUsage: "<scene.toml>",
			Flags: []cli.Flag{
				prefsFlag,
				cli.StringFlag{
					Name:  "mode",
					Value: "frame",
					Usage: "One of glow, outline or frame",
				},
				cli.BoolFlag{
					Name:  "merge",
					Usage: "Union overlapping selection polygons (also set by merge_glow)",
				},
			},
			Action: func(c *cli.Context) error {
				col, f, err := loadScene(c)
				if err != nil {
					return err
				}
				p, err := prefs.Load(c.String("prefs"))
				if err != nil {
					return err
				}
				g, err := generator(p)
				if err != nil {
					return err
				}
				merge := c.Bool("merge") || p.Bool(prefs.KeyMergeGlow, false)
				scale := selection.Multiplier(selection.ScaledDisplay{Scale: f.Scale})
				out, err := buildLayers(col, g, scale, c.String("mode"), f.ShowText(), merge)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			},
		},
		{
			Name:      "hit",
			Usage:     "Find the shape nearest to a point",
			ArgsUsage: "<scene.toml> <x> <y>",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "threshold",
					Value: 5,
					Usage: "Maximum pick distance in screen pixels",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					return errors.New("usage: hit <scene.toml> <x> <y>")
				}
				x, err := strconv.ParseFloat(c.Args().Get(1), 64)
				if err != nil {
					return errors.Wrap(err, "parse x")
				}
				y, err := strconv.ParseFloat(c.Args().Get(2), 64)
				if err != nil {
					return errors.Wrap(err, "parse y")
				}
				col, f, err := loadScene(c)
				if err != nil {
					return err
				}
				id := col.HitTest(x, y, c.Float64("threshold")*f.Scale)
				if id == "" {
					fmt.Println("no shape")
					return nil
				}
				fmt.Println(chalk.Cyan.Color(id))
				fmt.Print(col.Get(id).Statistics())
				return nil
			},
		},
		{
			Name:  "prefs",
			Usage: "Show or change the selection style preferences",
			Subcommands: []cli.Command{
				{
					Name:  "show",
					Usage: "Print the effective selection style",
					Flags: []cli.Flag{prefsFlag},
					Action: func(c *cli.Context) error {
						p, err := prefs.Load(c.String("prefs"))
						if err != nil {
							return err
						}
						return printPrefs(os.Stdout, p)
					},
				},
				{
					Name:      "set",
					Usage:     "Store one preference",
					ArgsUsage: "<key> <value>",
					Flags:     []cli.Flag{prefsFlag},
					Action: func(c *cli.Context) error {
						if c.NArg() != 2 {
							return errors.New("usage: prefs set <key> <value>")
						}
						p, err := prefs.Load(c.String("prefs"))
						if err != nil {
							return err
						}
						if err := p.Set(c.Args().Get(0), c.Args().Get(1)); err != nil {
							return err
						}
						return savePrefs(p)
					},
				},
				{
					Name:  "reset",
					Usage: "Write the default selection style",
					Flags: []cli.Flag{prefsFlag},
					Action: func(c *cli.Context) error {
						p, err := prefs.Load(c.String("prefs"))
						if err != nil {
							return err
						}
						p.SetStyle(selection.DefaultStyle())
						p.SetBool(prefs.KeyMergeGlow, false)
						return savePrefs(p)
					},
				},
			},
		},
		{
			Name:  "version",
			Usage: "Print build information",
			Action: func(c *cli.Context) error {
				fmt.Println(version.String(appName))
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Print(chalk.Red)
		log.Print(err)
		log.Print(chalk.Reset)
		os.Exit(1)
	}
}

func loadScene(c *cli.Context) (*scene.Collection, *scene.File, error) {
	if c.NArg() < 1 {
		return nil, nil, errors.New("missing scene file")
	}
	path := c.Args().First()
	f, err := scene.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	col, err := f.Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "build %s", path)
	}
	log.Printf("Loaded %d shapes from %s", col.Len(), path)
	return col, f, nil
}

// generator builds a layer generator from the saved selection style.
func generator(p *prefs.Prefs) (*selection.Generator, error) {
	style, err := p.Style()
	if err != nil {
		return nil, err
	}
	return selection.NewGenerator(style), nil
}

func savePrefs(p *prefs.Prefs) error {
	if err := p.Save(); err != nil {
		return err
	}
	log.Printf("Saved preferences to %s", p.Path())
	return nil
}

// printPrefs writes the effective value of every preference key.
func printPrefs(w io.Writer, p *prefs.Prefs) error {
	s, err := p.Style()
	if err != nil {
		return err
	}
	values := map[string]string{
		prefs.KeyGlowWidth:      strconv.FormatFloat(float64(s.GlowWidth), 'g', -1, 32),
		prefs.KeyGlowAlpha:      strconv.FormatFloat(float64(s.GlowAlpha), 'g', -1, 32),
		prefs.KeyGlowColor:      s.GlowColor.Hex(),
		prefs.KeyHighlightColor: s.HighlightColor.Hex(),
		prefs.KeyHighlightAlpha: strconv.FormatFloat(float64(s.HighlightAlpha), 'g', -1, 32),
		prefs.KeyOutlineColor:   s.OutlineColor.Hex(),
		prefs.KeyNodedJoin:      s.Join.String(),
		prefs.KeyMergeGlow:      strconv.FormatBool(p.Bool(prefs.KeyMergeGlow, false)),
	}
	fmt.Fprintln(w, chalk.Cyan.Color(p.Path()))
	for _, k := range prefs.Keys() {
		fmt.Fprintf(w, "%s = %s\n", k, values[k])
	}
	return nil
}

func printStats(w io.Writer, col *scene.Collection) {
	for _, id := range col.IDs() {
		obj := col.Get(id)
		marker := " "
		if obj.Selected() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, chalk.Green.Color(id))
		fmt.Fprint(w, obj.Statistics())
		if obj.Group() != "" {
			fmt.Fprintf(w, "Group: %s\n", obj.Group())
		}
		if obj.Notes() != "" {
			fmt.Fprintf(w, "Notes: %s\n", obj.Notes())
		}
	}
}

// layerDump is the JSON shape of the layers command output.
type layerDump map[string]*overlay.Layer

func buildLayers(col *scene.Collection, g *selection.Generator, scale float32, mode string, drawText, merge bool) (layerDump, error) {
	out := layerDump{}
	switch mode {
	case "frame":
		fr := col.Compose(g, scale, drawText)
		out["shapes"] = fr.Shapes
		out["selection"] = fr.Selection
		out["text"] = fr.Text
	case "glow", "outline":
		m := selection.ModeGlow
		if mode == "outline" {
			m = selection.ModeOutline
		}
		for _, id := range col.IDs() {
			if l := g.Layer(col.Get(id), scale, m); l != nil {
				out[id] = l
			}
		}
	default:
		return nil, errors.Errorf("unknown mode %q", mode)
	}

	if merge {
		for k, l := range out {
			if k == "shapes" || k == "text" {
				continue
			}
			out[k] = selection.Merge(l)
		}
	}
	return out, nil
}
