// Package storage wraps the MinIO client used for catalog snapshots.
//
// The Client interface lists only the calls the service makes (bucket checks, puts,
// gets and listings), so exporter and integrity code can be tested against
// storage/mocks. NewClient works against any S3 compatible endpoint; the connection
// is lazy and the first BucketExists call is what verifies credentials.
package storage
