package docs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"keyaudit/core/issue"
	"keyaudit/core/keys"
	"keyaudit/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Extension is matched case-insensitively against documentation file names.
const Extension = ".xml"

// IsDocumentation reports whether name looks like a documentation file.
func IsDocumentation(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}

// Collect walks root recursively and folds every XML file into one key set.
// An unset or missing root yields an empty set and a config issue.
func Collect(root string, ignore keys.Set, logger *zap.Logger) (keys.Set, []issue.Issue) {
	found := keys.NewSet()

	if root == "" {
		return found, []issue.Issue{{Kind: issue.KindConfig}}
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return found, []issue.Issue{{Kind: issue.KindConfig, Path: root, Err: err}}
	}

	var problems []issue.Issue
	files := 0

	_ = filepath.WalkDir(walkRoot(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: path, Err: err})
			return nil
		}
		if d.IsDir() || !IsDocumentation(d.Name()) {
			return nil
		}
		// Linked files are read, linked directories are not entered.
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		res, err := ExtractFile(path, ignore)
		if err != nil {
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: path, Err: err})
			return nil
		}
		found = Fold(found, res)
		files++

		logger.Debug("Scanned documentation file",
			zap.String("file", path),
			zap.Int("keys", res.Keys.Len()),
			zap.Int("shortcuts", res.Shortcuts.Len()),
		)
		return nil
	})

	logger.Info("Documentation scan completed",
		zap.String("root", root),
		zap.Int("files", files),
		zap.Int("keys", found.Len()),
	)

	return found, problems
}

// walkRoot makes WalkDir enter root even when root itself is a symbolic link.
func walkRoot(root string) string {
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	return root + string(filepath.Separator)
}

// CollectBucket folds every XML object under prefix into one key set.
// Objects are folded in listing order, which is lexicographic for S3.
func CollectBucket(ctx context.Context, client storage.Client, bucket, prefix string, ignore keys.Set, logger *zap.Logger) (keys.Set, []issue.Issue) {
	found := keys.NewSet()
	location := bucket + "/" + prefix

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil || !exists {
		return found, []issue.Issue{{Kind: issue.KindConfig, Path: location, Err: err}}
	}

	var problems []issue.Issue
	objects := 0

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: location, Err: obj.Err})
			continue
		}
		if strings.HasSuffix(obj.Key, "/") || !IsDocumentation(obj.Key) {
			continue
		}

		objectPath := bucket + "/" + obj.Key
		res, err := extractObject(ctx, client, bucket, obj.Key, ignore)
		if err != nil {
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: objectPath, Err: err})
			continue
		}
		res.Path = objectPath
		found = Fold(found, res)
		objects++

		logger.Debug("Scanned documentation object",
			zap.String("object", objectPath),
			zap.Int("keys", res.Keys.Len()),
		)
	}

	logger.Info("Bucket documentation scan completed",
		zap.String("bucket", bucket),
		zap.String("prefix", prefix),
		zap.Int("objects", objects),
		zap.Int("keys", found.Len()),
	)

	return found, problems
}

func extractObject(ctx context.Context, client storage.Client, bucket, key string, ignore keys.Set) (FileResult, error) {
	reader, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return FileResult{}, err
	}
	defer reader.Close()

	return ExtractReader(reader, ignore)
}
