// Package blobstore abstracts where circuit snapshots live: in memory,
// on the local file system, or in S3-compatible object storage.
package blobstore
