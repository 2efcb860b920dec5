// Package main provides the entry point for the dragonbones pose tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kverran/dragonbones-go/pkg/archive"
	"github.com/kverran/dragonbones-go/pkg/config"
	"github.com/kverran/dragonbones-go/pkg/dragonbones"
	"github.com/kverran/dragonbones-go/pkg/dragonbones/exporters"
	"github.com/kverran/dragonbones-go/pkg/infrastructure"
	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

const (
	settingsFile = "settings.yaml"
	logFile      = "log.txt"
)

func main() {
	var (
		bundlePath string
		animIdx    int
		frame      int
		speed      int
		export     string
		showHelp   bool
	)

	flag.StringVar(&bundlePath, "bundle", "", "DragonBones export bundle to load (zip)")
	flag.IntVar(&animIdx, "anim", 0, "Animation index to evaluate")
	flag.IntVar(&frame, "frame", -1, "Frame to evaluate (default from settings)")
	flag.IntVar(&speed, "speed", -1, "Keyframe-duration multiplier (default from settings)")
	flag.StringVar(&export, "export", "", "Export action: pose/gltf/glb/text/sprites/raw (default: list contents)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.Parse()

	if bundlePath == "" && flag.NArg() > 0 {
		bundlePath = flag.Arg(0)
	}

	if showHelp || bundlePath == "" {
		printUsage()
		os.Exit(0)
	}

	log, err := logger.NewFileLogger(logFile, logger.VerbosityInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	settings := config.NewSettings(settingsFile, log)
	if err := settings.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load settings file: %v\n", err)
	}
	log.SetVerbosity(logger.Verbosity(settings.LoggerVerbosity))

	if frame < 0 {
		frame = settings.Frame
	}
	if speed < 0 {
		speed = settings.Speed
	}
	if export == "pose" {
		export = settings.ExportFormat
	}

	start := time.Now()

	doc, atlas, err := dragonbones.LoadArchiveWithLogger(bundlePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", bundlePath, err)
		os.Exit(1)
	}

	if err := run(bundlePath, export, doc, atlas, animIdx, frame, speed, log, settings); err != nil {
		log.LogError(fmt.Sprintf("Failed to process %s: %v", bundlePath, err))
		fmt.Fprintf(os.Stderr, "Failed to process %s: %v\n", bundlePath, err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("Done (%.2fs)\n", elapsed.Seconds())
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("dragonbones pose tool")
	fmt.Println("")
	fmt.Println("Usage: dbones <bundle.zip>")
	fmt.Println("       dbones -bundle=<bundle.zip> -export=<action>")
	fmt.Println("")
	fmt.Println("Export actions:")
	fmt.Println("  (none)    - List armatures, animations, and the sub-texture count")
	fmt.Println("  pose      - Export the evaluated frame in the settings format")
	fmt.Println("  gltf/glb  - Export the evaluated frame as glTF")
	fmt.Println("  text      - Export the evaluated frame as a pose text file")
	fmt.Println("  sprites   - Crop every atlas sub-texture to its own PNG")
	fmt.Println("  raw       - Extract the raw bundle contents")
	fmt.Println("")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

// run performs the selected export action for a loaded bundle.
func run(bundlePath, export string, doc *dragonbones.Document, atlas *dragonbones.Atlas, animIdx, frame, speed int, log logger.Logger, settings *config.Settings) error {
	baseName := trimExt(filepath.Base(bundlePath))
	outDir := filepath.Join(settings.ExportDirectory, baseName)

	switch export {
	case "":
		printContents(doc, atlas)
		return nil

	case "gltf", "glb":
		props := dragonbones.Animate(doc, atlas, animIdx, frame, speed)
		format := exporters.GltfExportFormatGlTF
		ext := ".gltf"
		if export == "glb" {
			format = exporters.GltfExportFormatGlb
			ext = ".glb"
		}
		w := exporters.NewGltfWriter(format)
		w.AddFrameData(props)
		outPath := filepath.Join(outDir, fmt.Sprintf("%s_frame%d%s", baseName, frame, ext))
		log.LogInfo("Exporting glTF pose: " + outPath)
		return w.WriteAssetToFile(outPath)

	case "text":
		props := dragonbones.Animate(doc, atlas, animIdx, frame, speed)
		w := exporters.NewPoseWriter()
		w.AddFrameData(frame, props)
		outPath := filepath.Join(outDir, fmt.Sprintf("%s_frame%d.txt", baseName, frame))
		log.LogInfo("Exporting text pose: " + outPath)
		return w.WriteAssetToFile(outPath)

	case "sprites":
		return exportSprites(bundlePath, atlas, filepath.Join(outDir, "Sprites"), log, settings)

	case "raw":
		bundle := archive.GetArchive(bundlePath, log)
		if err := bundle.Initialize(); err != nil {
			return err
		}
		return bundle.WriteAllFiles(outDir)

	default:
		return fmt.Errorf("unknown export action: %s", export)
	}
}

// printContents lists the document and atlas contents to stdout.
func printContents(doc *dragonbones.Document, atlas *dragonbones.Atlas) {
	for i := range doc.Armature {
		arm := &doc.Armature[i]
		fmt.Printf("Armature %d: %s (%d bones, %d slots)\n", i, arm.Name, len(arm.Bone), len(arm.Slot))
		for j := range arm.Animation {
			fmt.Printf("  Animation %d: %s (%d frames)\n", j, arm.Animation[j].Name, arm.Animation[j].Duration)
		}
	}
	if atlas == nil {
		fmt.Println("No atlas")
		return
	}
	fmt.Printf("Atlas: %s (%d sub-textures)\n", atlas.ImagePath, len(atlas.SubTexture))
}

// exportSprites crops the atlas page into per-sprite PNG files.
func exportSprites(bundlePath string, atlas *dragonbones.Atlas, outDir string, log logger.Logger, settings *config.Settings) error {
	if atlas == nil {
		return fmt.Errorf("bundle has no atlas")
	}

	bundle := archive.GetArchive(bundlePath, log)
	if err := bundle.Initialize(); err != nil {
		return err
	}

	page := bundle.GetFile(filepath.Base(atlas.ImagePath))
	if page == nil {
		page = bundle.GetFirstBySuffix(".png")
	}
	if page == nil {
		return fmt.Errorf("bundle has no atlas page image")
	}

	return infrastructure.WriteSubTexturePngs(page.GetBytes(), atlas, outDir, settings.SpriteScale, log)
}

// trimExt strips the file extension from a name.
func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
