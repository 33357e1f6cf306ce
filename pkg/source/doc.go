// Package source loads HTML documents into vdom trees.
//
// A document reference is one of:
//
//	path/to/page.html   a local file
//	-                   standard input
//	s3://bucket/key     an S3 object
//
// S3 objects are fetched through an ObjectGetter, normally the *s3.Client
// returned by NewS3Client. Tests substitute a fake getter.
//
//	client, err := source.NewS3Client(ctx, cfg.S3)
//	if err != nil {
//		return err
//	}
//	doc, err := source.NewLoader(source.WithS3(client)).Load(ctx, "s3://pages/index.html")
package source
