// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package images validates and stores nominee images.

Validate sniffs the bytes (PNG, JPEG, GIF, WebP up to MaxImageSize).
Uploads go to a Bucket:

  - DirBucket writes to a local directory and serves GET /images/{name}
  - S3Bucket writes to an S3-compatible bucket (MinIO, AWS)

main picks S3Bucket when S3_ENDPOINT is set.
*/
package images
