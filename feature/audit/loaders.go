package audit

import (
	"context"

	"keyaudit/core/keys"
	"keyaudit/core/reconcile"
	"keyaudit/feature/docs"
	"keyaudit/feature/source"
)

// docsLoader collects documented keys from the local XML tree and, when
// configured, from the documentation bucket.
type docsLoader struct {
	svc    *Service
	ignore keys.Set
}

func (l *docsLoader) Name() string {
	return reconcile.DocsName
}

func (l *docsLoader) LoadKeys(ctx context.Context) (keys.Set, error) {
	s := l.svc
	found := keys.NewSet()

	// A bucket alone is a valid documentation source.
	if s.settings.XMLPath != "" || s.client == nil {
		local, problems := docs.Collect(s.settings.XMLPath, l.ignore, s.logger)
		s.reportIssues(problems)
		found.Merge(local)
	}

	if s.client != nil {
		remote, problems := docs.CollectBucket(ctx, s.client, s.bucket, s.prefix, l.ignore, s.logger)
		s.reportIssues(problems)
		found.Merge(remote)
	}

	return found, nil
}

// sourceLoader collects key usages from every configured source root.
type sourceLoader struct {
	svc    *Service
	ignore keys.Set
}

func (l *sourceLoader) Name() string {
	return reconcile.SourceName
}

func (l *sourceLoader) LoadKeys(ctx context.Context) (keys.Set, error) {
	s := l.svc
	found := keys.NewSet()

	for _, path := range s.settings.SourceRoots() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root := source.Root{
			Path:       path,
			Extensions: s.settings.Extensions,
			Exclusions: s.settings.Exclusions,
		}
		rootKeys, problems := source.Scan(root, s.catalogue, l.ignore, s.logger)
		s.reportIssues(problems)
		found.Merge(rootKeys)
	}

	return found, nil
}
