package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadFile is one file queued for upload: its name and an opener for the
// content, so each concurrent attempt reads its own stream.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// UploadResult is the normalized outcome of a single upload attempt. Hosts
// never let a transport error escape: a failure comes back tagged here with
// Success false and the host's message in Error.
type UploadResult struct {
	Success    bool   `json:"success"`
	URL        string `json:"url,omitempty"`
	DisplayURL string `json:"displayUrl,omitempty"`
	DeleteURL  string `json:"deleteUrl,omitempty"`
	Size       int64  `json:"size,omitempty"`
	FileName   string `json:"fileName,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchResult aggregates a concurrent batch. Success is true iff Failed is
// empty; URLs holds the successful subset in input-index order.
type BatchResult struct {
	Success  bool           `json:"success"`
	Uploaded []UploadResult `json:"uploaded"`
	Failed   []UploadResult `json:"failed"`
	URLs     []string       `json:"urls"`
}

// ImageHost uploads one file to an external hosting service.
type ImageHost interface {
	Upload(ctx context.Context, file UploadFile) UploadResult
}

func failedUpload(name, message string) UploadResult {
	return UploadResult{Success: false, FileName: name, Error: message}
}

// ImgBBHost uploads to the ImgBB REST API.
type ImgBBHost struct {
	client    *resty.Client
	apiKey    string
	uploadURL string
}

const imgbbUploadURL = "https://api.imgbb.com/1/upload"

func NewImgBBHost(apiKey string) *ImgBBHost {
	return &ImgBBHost{
		client:    resty.New().SetTimeout(30 * time.Second),
		apiKey:    apiKey,
		uploadURL: imgbbUploadURL,
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		DeleteURL  string `json:"delete_url"`
		Size       int64  `json:"size"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (h *ImgBBHost) Upload(ctx context.Context, file UploadFile) UploadResult {
	reader, err := file.Open()
	if err != nil {
		return failedUpload(file.Name, fmt.Sprintf("could not open file: %v", err))
	}
	defer reader.Close()

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("image", file.Name, reader).
		SetFormData(map[string]string{"key": h.apiKey}).
		Post(h.uploadURL)
	if err != nil {
		return failedUpload(file.Name, fmt.Sprintf("upload request failed: %v", err))
	}

	var body imgbbResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return failedUpload(file.Name, fmt.Sprintf("unexpected response from image host: %v", err))
	}

	if !body.Success {
		message := body.Error.Message
		if message == "" {
			message = fmt.Sprintf("image host returned status %d", resp.StatusCode())
		}
		return failedUpload(file.Name, message)
	}

	return UploadResult{
		Success:    true,
		URL:        body.Data.URL,
		DisplayURL: body.Data.DisplayURL,
		DeleteURL:  body.Data.DeleteURL,
		Size:       body.Data.Size,
		FileName:   file.Name,
	}
}

// S3Host uploads to an S3 bucket. It serves the same contract as ImgBB for
// deployments that keep media on their own bucket instead of a free host.
type S3Host struct {
	bucket   string
	uploader *manager.Uploader
}

func NewS3Host(ctx context.Context, bucket string) (*S3Host, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Host{bucket: bucket, uploader: manager.NewUploader(client)}, nil
}

func (h *S3Host) Upload(ctx context.Context, file UploadFile) UploadResult {
	reader, err := file.Open()
	if err != nil {
		return failedUpload(file.Name, fmt.Sprintf("could not open file: %v", err))
	}
	defer reader.Close()

	key := fmt.Sprintf("%s-%s", uuid.NewString(), file.Name)
	result, err := h.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
		Body:   reader,
		ACL:    "public-read",
	})
	if err != nil {
		return failedUpload(file.Name, fmt.Sprintf("upload request failed: %v", err))
	}

	return UploadResult{
		Success:    true,
		URL:        result.Location,
		DisplayURL: result.Location,
		FileName:   file.Name,
	}
}

// UnconfiguredHost stands in when no image host credentials are present, so
// the server starts without them and uploads fail with a clear message
// instead of a nil dereference.
type UnconfiguredHost struct{}

func (UnconfiguredHost) Upload(ctx context.Context, file UploadFile) UploadResult {
	return failedUpload(file.Name, "image hosting is not configured")
}

// UploadImages uploads every file concurrently and waits for all attempts to
// settle. Completion order is arbitrary, but results land in a slice indexed
// by input position, so Uploaded, Failed and URLs all keep input-index order.
func UploadImages(ctx context.Context, host ImageHost, files []UploadFile) BatchResult {
	results := make([]UploadResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file UploadFile) {
			defer wg.Done()
			results[i] = host.Upload(ctx, file)
		}(i, file)
	}
	wg.Wait()

	batch := BatchResult{
		Uploaded: []UploadResult{},
		Failed:   []UploadResult{},
		URLs:     []string{},
	}
	for _, result := range results {
		if result.Success {
			batch.Uploaded = append(batch.Uploaded, result)
			batch.URLs = append(batch.URLs, result.URL)
		} else {
			batch.Failed = append(batch.Failed, result)
		}
	}
	batch.Success = len(batch.Failed) == 0
	return batch
}
