package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gocv.io/x/gocv"
	"k8s.io/klog/v2"

	"github.com/ngv2003/emotion-ai/internal/config"
	"github.com/ngv2003/emotion-ai/internal/utils"
	"github.com/ngv2003/emotion-ai/pkg/annotate"
	"github.com/ngv2003/emotion-ai/pkg/fonts"
	"github.com/ngv2003/emotion-ai/pkg/media"
	"github.com/ngv2003/emotion-ai/pkg/types"
)

type options struct {
	bbox    types.BoundingBox
	hasBBox bool
	label   string
	warning string
	stats   types.EmotionStats
	emoji   gocv.Mat
	crop    bool
	cropOut string
}

func main() {
	var in, out, cfgPath, fontDir string
	var bboxSpec, label, warning, statsSpec, emojiPath string
	var crop bool

	klog.InitFlags(nil)
	flag.StringVar(&in, "in", "", "input image or video path")
	flag.StringVar(&out, "out", "", "output path (default: <input>_annotated, or the configured video path)")
	flag.StringVar(&cfgPath, "config", "", "JSON config file (optional)")
	flag.StringVar(&fontDir, "fontdir", "", "directory containing "+fonts.DefaultFontFile+" (default: config fonts.dir)")
	flag.StringVar(&bboxSpec, "bbox", "", "face bounding box as x1,y1,x2,y2")
	flag.StringVar(&label, "label", "", "name label for the bounding box")
	flag.StringVar(&warning, "warning", "", "warning banner text")
	flag.StringVar(&statsSpec, "stats", "", "emotion stats as label=confidence,label=confidence")
	flag.StringVar(&emojiPath, "emoji", "", "emoji image to overlay (png/webp with alpha)")
	flag.BoolVar(&crop, "crop", false, "also save the facial region crop (requires -bbox)")
	flag.Parse()

	if in == "" {
		klog.Exitf("usage: %s -in input.jpg|input.mp4 [-bbox x1,y1,x2,y2] [-label name] [-stats happy=80,sad=20] [-warning text] [-emoji emoji.png]",
			filepath.Base(os.Args[0]))
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			klog.Exitf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		klog.Exitf("Invalid config: %v", err)
	}
	if fontDir == "" {
		fontDir = cfg.Fonts.Dir
	}

	lib, err := fonts.Load(fontDir)
	if err != nil {
		klog.Warningf("Falling back to embedded font: %v", err)
		lib = fonts.Default()
	}
	annotator := annotate.NewWithConfig(lib, annotate.DefaultConfig())

	opts := options{label: label, warning: warning, crop: crop}
	if bboxSpec != "" {
		bbox, err := parseBBox(bboxSpec)
		if err != nil {
			klog.Exitf("Invalid -bbox: %v", err)
		}
		opts.bbox = bbox
		opts.hasBBox = true
	}
	if statsSpec != "" {
		stats, err := types.ParseEmotionStats(statsSpec)
		if err != nil {
			klog.Exitf("Invalid -stats: %v", err)
		}
		opts.stats = stats
	}
	opts.emoji = gocv.NewMat()
	if emojiPath != "" {
		opts.emoji.Close()
		emoji, err := media.LoadEmoji(emojiPath)
		if err != nil {
			klog.Exitf("Failed to load emoji: %v", err)
		}
		opts.emoji = emoji
	}
	defer opts.emoji.Close()
	if crop && !opts.hasBBox {
		klog.Exit("-crop requires -bbox")
	}

	if utils.IsVideoFile(in) {
		if out == "" {
			out = cfg.Video.OutputPath
		}
		if err := annotateVideo(annotator, in, out, cfg.Video.Codec, opts); err != nil {
			klog.Exitf("Video annotation failed: %v", err)
		}
		klog.Infof("Wrote %s", out)
		return
	}

	if out == "" {
		out = utils.GenerateOutputFilename(in, filepath.Dir(in), "_annotated")
	}
	opts.cropOut = utils.GenerateOutputFilename(out, filepath.Dir(out), "_face")
	if err := annotateImage(annotator, in, out, opts); err != nil {
		klog.Exitf("Image annotation failed: %v", err)
	}
	klog.Infof("Wrote %s", out)
}

// parseBBox parses "x1,y1,x2,y2" into a bounding box.
func parseBBox(s string) (types.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return types.BoundingBox{}, fmt.Errorf("want 4 comma-separated integers, got %q", s)
	}

	coords := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return types.BoundingBox{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		coords[i] = v
	}

	bbox := types.NewBoundingBox(coords[0], coords[1], coords[2], coords[3])
	if bbox.Empty() {
		return types.BoundingBox{}, fmt.Errorf("box %q encloses no pixels", s)
	}
	return bbox, nil
}

// annotateImage loads a single image, applies the requested annotations
// and writes the result.
func annotateImage(a *annotate.Annotator, in, out string, opts options) error {
	frame, err := media.LoadImage(in, media.ModeBGR)
	if err != nil {
		return err
	}
	defer frame.Close()

	// The crop lands next to the annotated output, so the directory must
	// exist before either write.
	if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}

	if opts.crop {
		face, err := media.FacialRegion(frame, opts.bbox)
		if err != nil {
			return err
		}
		defer face.Close()
		if ok := gocv.IMWrite(opts.cropOut, face); !ok {
			return fmt.Errorf("failed to write facial crop %q", opts.cropOut)
		}
		klog.Infof("Wrote %s", opts.cropOut)
	}

	annotated, err := annotateFrame(a, frame, opts)
	if err != nil {
		return err
	}
	defer annotated.Close()

	if ok := gocv.IMWrite(out, annotated); !ok {
		return fmt.Errorf("failed to write image %q", out)
	}
	return nil
}

// annotateVideo copies the input stream frame by frame, applying the
// requested annotations to each frame.
func annotateVideo(a *annotate.Annotator, in, out, codec string, opts options) error {
	stream, err := gocv.VideoCaptureFile(in)
	if err != nil {
		return fmt.Errorf("failed to open video %q: %w", in, err)
	}
	defer stream.Close()

	if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}
	writer, err := media.NewVideoWriterWithCodec(stream, out, codec)
	if err != nil {
		return err
	}
	defer writer.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	frames := 0
	for stream.Read(&frame) {
		if frame.Empty() {
			continue
		}

		annotated, err := annotateFrame(a, frame, opts)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		if err := writer.Write(annotated); err != nil {
			annotated.Close()
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		annotated.Close()
		frames++
	}

	klog.V(1).Infof("Annotated %d frames", frames)
	return nil
}

// annotateFrame applies the requested annotations to a copy of frame.
func annotateFrame(a *annotate.Annotator, frame gocv.Mat, opts options) (gocv.Mat, error) {
	out := frame.Clone()

	if opts.hasBBox {
		if opts.label != "" {
			next, err := a.BoundingBoxWithLabel(out, opts.label, opts.bbox, annotate.DefaultLabelBoxColor)
			out.Close()
			if err != nil {
				return gocv.NewMat(), err
			}
			out = next
		} else if err := a.BoundingBox(&out, opts.bbox, annotate.DefaultBoxColor); err != nil {
			out.Close()
			return gocv.NewMat(), err
		}
	}

	if len(opts.stats) > 0 {
		next, err := a.EmotionStats(out, opts.stats)
		out.Close()
		if err != nil {
			return gocv.NewMat(), err
		}
		out = next
	}

	if opts.warning != "" {
		next, err := a.Warning(out, opts.warning)
		out.Close()
		if err != nil {
			return gocv.NewMat(), err
		}
		out = next
	}

	if !opts.emoji.Empty() {
		if err := a.OverlayEmoji(&out, opts.emoji); err != nil {
			out.Close()
			return gocv.NewMat(), err
		}
	}

	return out, nil
}
