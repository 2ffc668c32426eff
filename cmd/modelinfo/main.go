// Command modelinfo loads a glTF model the way the viewer does and prints
// its node tree and animation clips.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/ADavid9914/PaginaWebTRB/logging"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	root := flag.String("root", "public", "asset root the model path is relative to")
	timeout := flag.Duration("timeout", 10*time.Second, "give up loading after this long")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.NewDefaultLogger("modelinfo", *debug)
	if flag.NArg() == 0 {
		log.Errorf("usage: modelinfo [-root dir] model.glb [more.glb...]")
		os.Exit(2)
	}

	loader := engine.NewGLTFLoader(*root)
	failed := false
	for _, path := range flag.Args() {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		asset, err := loader.Load(ctx, path)
		cancel()
		if err != nil {
			log.Errorf("%s: %v", path, err)
			failed = true
			continue
		}
		log.Debugf("loaded %s", path)
		describe(os.Stdout, asset)
	}
	if failed {
		os.Exit(1)
	}
}

func describe(w io.Writer, asset *engine.Asset) {
	fmt.Fprintf(w, "%s\n", asset.Path)
	tris := 0
	asset.Root.Walk(func(n *engine.Node, world mgl32.Mat4) {
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		count := 0
		for _, m := range n.Meshes {
			count += m.TriangleCount()
		}
		tris += count
		pos := world.Col(3)
		fmt.Fprintf(w, "  %s%s  (%.2f, %.2f, %.2f)", strings.Repeat("  ", depth), nodeName(n), pos.X(), pos.Y(), pos.Z())
		if count > 0 {
			fmt.Fprintf(w, "  %d tris", count)
		}
		fmt.Fprintln(w)
	})
	fmt.Fprintf(w, "  triangles: %d\n", tris)
	if len(asset.Clips) == 0 {
		fmt.Fprintln(w, "  no animations")
		return
	}
	for _, c := range asset.Clips {
		fmt.Fprintf(w, "  clip %q: %.2fs, %d tracks\n", c.Name, c.Duration, len(c.Tracks))
	}
	fmt.Fprintf(w, "  duration: %.2fs\n", asset.Duration())
}

func nodeName(n *engine.Node) string {
	if n.Name == "" {
		return "(unnamed)"
	}
	return n.Name
}
