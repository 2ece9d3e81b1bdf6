package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deepnoodle-ai/veo/media"
	"github.com/deepnoodle-ai/veo/media/providers/google"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate videos from a text prompt",
	Long:  "Generate videos from a text prompt using Google Veo. Supports text-to-video, image-to-video, and reference images for assets and styles.",
	RunE:  runGenerate,
}

var (
	generatePrompt         string
	generateFilename       string
	generateModel          string
	generateDuration       int
	generateAspectRatio    string
	generateNegativePrompt string
	generateSeed           int32
	generateCount          int
	generateInputImage     string
	generateLastFrame      string
	generateResolution     string
	generateElements       []string
	generateStyles         []string
	generateAPIKey         string
	generatePollInterval   time.Duration
	generateMaxWait        time.Duration
	generateNoWait         bool
)

func runGenerate(cmd *cobra.Command, args []string) error {
	if generatePrompt == "" {
		return fmt.Errorf("prompt is required")
	}
	if generateFilename == "" {
		return fmt.Errorf("filename is required")
	}
	// The flags always carry a concrete value, so zero is a user error here
	// rather than "use the default".
	if generateDuration < media.MinDurationSeconds || generateDuration > media.MaxDurationSeconds {
		return &media.InvalidParameterError{Param: "duration", Reason: "must be between 5 and 8 seconds"}
	}
	if generateCount < 1 || generateCount > media.MaxVideosPerRequest {
		return &media.InvalidParameterError{Param: "count", Reason: "must be between 1 and 4"}
	}

	config, err := loadConfig(configPath())
	if err != nil {
		return err
	}
	if err := applyConfig(cmd, config); err != nil {
		return err
	}

	request, err := buildGenerateRequest(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}
	provider, err := google.New(ctx,
		google.WithAPIKey(generateAPIKey),
		google.WithPollInterval(generatePollInterval),
		google.WithMaxWait(generateMaxWait),
		google.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}

	response, err := provider.GenerateVideo(ctx, request)
	if err != nil {
		return err
	}

	if response.Status != media.StateCompleted {
		if generateNoWait {
			fmt.Printf("Video generation started with operation ID: %s\n", response.OperationID)
			return nil
		}
		infoStyle.Printf("Waiting for video generation to complete (operation %s)...\n", response.OperationID)
		response, err = provider.WaitForVideoGeneration(ctx, response.OperationID)
		if err != nil {
			return err
		}
	}

	if len(response.Videos) == 0 {
		return fmt.Errorf("no videos were generated")
	}
	return saveVideos(ctx, provider, response.Videos)
}

// buildGenerateRequest assembles the generation request from the command
// flags, loading any referenced image files from disk.
func buildGenerateRequest(cmd *cobra.Command) (*media.VideoGenerationRequest, error) {
	request := &media.VideoGenerationRequest{
		Prompt:          generatePrompt,
		Model:           generateModel,
		DurationSeconds: generateDuration,
		AspectRatio:     generateAspectRatio,
		NegativePrompt:  generateNegativePrompt,
		Count:           generateCount,
		Resolution:      generateResolution,
	}
	if cmd != nil && cmd.Flags().Changed("seed") {
		seed := generateSeed
		request.Seed = &seed
	}
	if generateInputImage != "" {
		image, err := media.LoadImage(generateInputImage)
		if err != nil {
			return nil, err
		}
		request.Image = image
	}
	if generateLastFrame != "" {
		image, err := media.LoadImage(generateLastFrame)
		if err != nil {
			return nil, err
		}
		request.LastFrame = image
	}
	for _, path := range generateElements {
		image, err := media.LoadImage(path)
		if err != nil {
			return nil, err
		}
		request.ReferenceImages = append(request.ReferenceImages, media.ReferenceImage{
			Image: image,
			Type:  media.ReferenceTypeAsset,
		})
	}
	for _, path := range generateStyles {
		image, err := media.LoadImage(path)
		if err != nil {
			return nil, err
		}
		request.ReferenceImages = append(request.ReferenceImages, media.ReferenceImage{
			Image: image,
			Type:  media.ReferenceTypeStyle,
		})
	}
	return request, nil
}

// saveVideos downloads and writes each generated video. Failures are
// reported per item; earlier saved files are kept.
func saveVideos(ctx context.Context, downloader media.VideoDownloader, videos []media.GeneratedVideo) error {
	paths := outputPaths(generateFilename, len(videos))
	var failures int
	for i, video := range videos {
		data, err := downloader.DownloadVideo(ctx, video)
		if err != nil {
			warningStyle.Fprintf(os.Stderr, "video %d: %v\n", i+1, err)
			failures++
			continue
		}
		if err := writeVideoFile(paths[i], data); err != nil {
			warningStyle.Fprintf(os.Stderr, "video %d: %v\n", i+1, err)
			failures++
			continue
		}
		successStyle.Printf("Video saved: %s\n", paths[i])
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d videos failed to save", failures, len(videos))
	}
	return nil
}

func writeVideoFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &media.FilesystemError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &media.FilesystemError{Path: path, Err: err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "Text description of the desired video (required)")
	generateCmd.Flags().StringVarP(&generateFilename, "filename", "o", "", "Output file path, e.g. output.mp4 (required)")
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", media.DefaultModelAlias, "Model alias or identifier (see 'veo models')")
	generateCmd.Flags().IntVarP(&generateDuration, "duration", "d", media.DefaultDurationSeconds, "Duration in seconds (5-8)")
	generateCmd.Flags().StringVar(&generateAspectRatio, "aspect-ratio", media.AspectRatioLandscape, "Aspect ratio (16:9 or 9:16)")
	generateCmd.Flags().StringVar(&generateNegativePrompt, "negative-prompt", "", "What to avoid in the video")
	generateCmd.Flags().Int32Var(&generateSeed, "seed", 0, "Random seed for reproducibility")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of videos to generate (1-4)")
	generateCmd.Flags().StringVar(&generateInputImage, "input-image", "", "Starting image for image-to-video generation")
	generateCmd.Flags().StringVar(&generateLastFrame, "last-frame", "", "Image to use as the last frame (Vertex AI backend only)")
	generateCmd.Flags().StringVar(&generateResolution, "resolution", "", "Output resolution, 720p or 1080p (Vertex AI backend only)")
	generateCmd.Flags().StringArrayVar(&generateElements, "element", nil, "Reference image for an asset or element (repeatable)")
	generateCmd.Flags().StringArrayVar(&generateStyles, "style", nil, "Reference image for a visual style (repeatable)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	generateCmd.Flags().DurationVar(&generatePollInterval, "poll-interval", google.DefaultPollInterval, "Interval between operation status checks")
	generateCmd.Flags().DurationVar(&generateMaxWait, "max-wait", google.DefaultMaxWait, "Maximum time to wait for completion")
	generateCmd.Flags().BoolVar(&generateNoWait, "no-wait", false, "Print the operation ID and exit instead of waiting")

	generateCmd.MarkFlagRequired("prompt")
	generateCmd.MarkFlagRequired("filename")
}
