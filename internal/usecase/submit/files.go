package submit

import (
	"context"
	"fmt"
	"io"

	"github.com/futig/shortlist-web/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// readFiles buffers every file concurrently. The result keeps selection order.
// Any failure aborts the whole read: a partial set is never returned.
func readFiles(ctx context.Context, files []entity.FileSource) ([]entity.UploadedFile, error) {
	uploaded := make([]entity.UploadedFile, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			content, err := readFile(f)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", entity.ErrFileRead, f.Name(), err)
			}

			uploaded[i] = entity.UploadedFile{Name: f.Name(), Content: content}

			ctxzap.Debug(ctx, "file buffered",
				zap.String("filename", f.Name()),
				zap.Int("size", len(content)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return uploaded, nil
}

func readFile(f entity.FileSource) ([]byte, error) {
	src, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return content, nil
}
