package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gadgetfinder/gadget-finder-api/models"
	"github.com/google/uuid"
)

// SubmissionState names where a submission is in its lifecycle.
type SubmissionState string

const (
	StateIdle       SubmissionState = "IDLE"
	StateValidating SubmissionState = "VALIDATING"
	StateUploading  SubmissionState = "UPLOADING"
	StateInserting  SubmissionState = "INSERTING"
	StateSucceeded  SubmissionState = "SUCCEEDED"
	StateFailed     SubmissionState = "FAILED"
)

// SubmissionStage tags which stage a failed submission died in.
type SubmissionStage string

const (
	StageValidation SubmissionStage = "validation"
	StageUpload     SubmissionStage = "upload"
	StageInsert     SubmissionStage = "insert"
)

var (
	ErrNameRequired  = errors.New("Product name is required")
	ErrPriceRequired = errors.New("Valid price is required")
	ErrStockRequired = errors.New("Valid stock quantity is required")
)

// ProductInserter is the slice of the repository the workflow needs.
type ProductInserter interface {
	CreateProduct(ctx context.Context, input models.ProductInput) (string, error)
}

// AttachedImage is a file the user attached to the form, alive only between
// selection and a successful submission. Preview, when set, is released when
// the image is removed or the submission succeeds.
type AttachedImage struct {
	ID      string
	File    UploadFile
	Preview func()
}

// Notifier receives user-facing progress messages at stage transitions.
// Levels mirror the toast kinds: "info", "success", "error".
type Notifier func(level, message string)

// SubmissionResult reports where a submission ended. FailedStage and Err are
// set only when State is FAILED.
type SubmissionResult struct {
	State       SubmissionState
	FailedStage SubmissionStage
	Err         error
	ProductID   string
	ImageURLs   []string
}

// SubmissionService runs the add-product saga: validate, upload, insert.
// Stages are strictly sequential, nothing is retried, and an upload failure
// aborts the whole submission before any database write.
type SubmissionService struct {
	host     ImageHost
	inserter ProductInserter
	notify   Notifier

	images []AttachedImage
}

func NewSubmissionService(host ImageHost, inserter ProductInserter, notify Notifier) *SubmissionService {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &SubmissionService{host: host, inserter: inserter, notify: notify}
}

// AttachImage queues a file for the next submission and returns its
// transient id.
func (s *SubmissionService) AttachImage(file UploadFile, preview func()) string {
	image := AttachedImage{ID: uuid.NewString(), File: file, Preview: preview}
	s.images = append(s.images, image)
	return image.ID
}

// RemoveImage drops a queued file by id, releasing its preview.
func (s *SubmissionService) RemoveImage(id string) {
	kept := s.images[:0]
	for _, image := range s.images {
		if image.ID == id {
			if image.Preview != nil {
				image.Preview()
			}
			continue
		}
		kept = append(kept, image)
	}
	s.images = kept
}

// AttachedImages returns the ids of the queued files, in attach order.
func (s *SubmissionService) AttachedImages() []string {
	ids := make([]string, len(s.images))
	for i, image := range s.images {
		ids[i] = image.ID
	}
	return ids
}

func validateInput(input models.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if input.Price <= 0 {
		return ErrPriceRequired
	}
	if input.Stock < 0 {
		return ErrStockRequired
	}
	return nil
}

func (s *SubmissionService) fail(stage SubmissionStage, err error) SubmissionResult {
	s.notify("error", err.Error())
	return SubmissionResult{State: StateFailed, FailedStage: stage, Err: err}
}

// Submit runs the three stages. The upload stage is all-or-nothing: if any
// attached file fails, the product document is not inserted and the user has
// to resubmit, which re-uploads every image. On success the attached images
// are discarded and their previews released.
func (s *SubmissionService) Submit(ctx context.Context, input models.ProductInput) SubmissionResult {
	if err := validateInput(input); err != nil {
		return s.fail(StageValidation, err)
	}

	imageURLs := []string{}
	if len(s.images) > 0 {
		s.notify("info", fmt.Sprintf("Uploading %d images...", len(s.images)))

		files := make([]UploadFile, len(s.images))
		for i, image := range s.images {
			files[i] = image.File
		}
		batch := UploadImages(ctx, s.host, files)
		if !batch.Success {
			return s.fail(StageUpload, fmt.Errorf("Image upload failed: %s", batch.Failed[0].Error))
		}
		imageURLs = batch.URLs
		s.notify("success", fmt.Sprintf("Successfully uploaded %d images", len(imageURLs)))
	}

	input.Images = imageURLs
	s.notify("info", "Saving product to database...")

	productID, err := s.inserter.CreateProduct(ctx, input)
	if err != nil {
		return s.fail(StageInsert, fmt.Errorf("Failed to add product: %w", err))
	}

	s.reset()
	s.notify("success", "Product added successfully! Your electronic gadget is now live.")
	return SubmissionResult{State: StateSucceeded, ProductID: productID, ImageURLs: imageURLs}
}

func (s *SubmissionService) reset() {
	for _, image := range s.images {
		if image.Preview != nil {
			image.Preview()
		}
	}
	s.images = nil
}
