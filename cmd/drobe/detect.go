package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ainsleyw/drobe/internal/cli"
	"github.com/ainsleyw/drobe/internal/closet"
	"github.com/ainsleyw/drobe/internal/common"
	"github.com/ainsleyw/drobe/internal/model"
)

func detectCmd() *cobra.Command {
	var (
		labels  []string
		types   []string
		drops   []int
		autoYes bool
	)

	cmd := &cobra.Command{
		Use:   "detect <photo>",
		Short: "Detect garments in an outfit photo and save them to your closet",
		Long: `Upload an outfit photo to the detection service, review the detected
garments, and save the accepted ones to your closet.

Detections are numbered; edit them before saving with repeatable flags:

  drobe detect outfit.jpg --label 0="Linen Shirt" --type 0=top --drop 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			photoPath := args[0]

			photo, err := os.ReadFile(photoPath)
			if err != nil {
				return fmt.Errorf("failed to read photo: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			detector := newDetector()

			// Health is advisory only; a down service will fail the upload
			// with a clearer error anyway.
			if err := detector.Health(ctx); err != nil {
				fmt.Println(cli.WarningStyle.Render(cli.WarningIcon + " detection service unreachable, trying anyway"))
			}

			fmt.Println(cli.TitleStyle.Render(cli.CameraIcon + " Detecting clothing items..."))

			result, err := detector.DetectBase64(ctx, photo)
			if err != nil {
				return common.NewUserError(
					"Could not detect garments. Is the detection service running?", err)
			}

			detections := closet.FromResult(result, photoPath)
			if len(detections) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No garments detected in this photo."))
				return nil
			}

			if err := applyEdits(detections, labels, types, drops); err != nil {
				return err
			}

			renderDetections(detections)

			kept := 0
			for _, d := range detections {
				if !d.Drop {
					kept++
				}
			}
			if kept == 0 {
				fmt.Println(cli.SubtleStyle.Render("All detections dropped; nothing to save."))
				return nil
			}

			if !autoYes && !cli.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Save %d item(s) to your closet?", kept)) {
				fmt.Println(cli.SubtleStyle.Render("Nothing saved."))
				return nil
			}

			// Cropped garment images arrive as base64 blobs; persist them as
			// files so items reference stable paths.
			imgStore, err := newImageStore()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(kept,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Saving garment images..."),
			)
			for i := range detections {
				if detections[i].Drop {
					continue
				}
				uri, err := imgStore.Materialize(detections[i].ImageURI)
				if err != nil {
					return fmt.Errorf("failed to save garment image: %w", err)
				}
				detections[i].ImageURI = uri
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			items, err := closet.BuildItems(detections, photoPath)
			if err != nil {
				return err
			}
			if err := store.AppendItems(ctx, items); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s Saved %d clothing item(s) to your closet.", cli.SuccessIcon, len(items))))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&labels, "label", nil, "relabel a detection: index=label (repeatable)")
	cmd.Flags().StringArrayVar(&types, "type", nil, "retype a detection: index=type (repeatable)")
	cmd.Flags().IntSliceVar(&drops, "drop", nil, "drop a detection by index (repeatable)")
	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "save without confirmation")

	return cmd
}

// applyEdits applies --label/--type/--drop review edits to the detections.
func applyEdits(detections []closet.Detection, labels, types []string, drops []int) error {
	find := func(index int) (*closet.Detection, error) {
		if index < 0 || index >= len(detections) {
			return nil, fmt.Errorf("no detection with index %d", index)
		}
		return &detections[index], nil
	}

	for _, edit := range labels {
		index, value, err := parseEdit(edit)
		if err != nil {
			return err
		}
		d, err := find(index)
		if err != nil {
			return err
		}
		if err := d.Relabel(value, ""); err != nil {
			return err
		}
	}

	for _, edit := range types {
		index, value, err := parseEdit(edit)
		if err != nil {
			return err
		}
		d, err := find(index)
		if err != nil {
			return err
		}
		d.Type = model.ClothingType(strings.ToLower(strings.TrimSpace(value)))
	}

	for _, index := range drops {
		d, err := find(index)
		if err != nil {
			return err
		}
		d.Drop = true
	}

	return nil
}

// parseEdit splits an "index=value" flag argument.
func parseEdit(s string) (int, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("expected index=value, got %q", s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, "", fmt.Errorf("invalid detection index %q", parts[0])
	}
	return index, parts[1], nil
}

func renderDetections(detections []closet.Detection) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("#"),
		cli.TableHeaderStyle.Render("Label"),
		cli.TableHeaderStyle.Render("Type"),
		cli.TableHeaderStyle.Render("Confidence"),
		cli.TableHeaderStyle.Render(""))

	for _, d := range detections {
		status := ""
		if d.Drop {
			status = cli.SubtleStyle.Render("(dropped)")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f%%\t%s\n",
			d.Index,
			d.Label,
			cli.TypeStyle(string(d.Type)).Render(string(d.Type)),
			d.Confidence*100,
			status)
	}
}
