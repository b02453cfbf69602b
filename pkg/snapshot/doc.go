// Package snapshot publishes rendered tooltip HTML to a local directory or
// an S3 bucket.
//
//	target, _ := snapshot.ParseTarget("s3://charts/tooltips/revenue.html")
//	store, key, _ := snapshot.ForTarget(target, snapshot.Options{Region: "eu-west-1"})
//	location, err := store.Put(ctx, key, []byte(html))
package snapshot
