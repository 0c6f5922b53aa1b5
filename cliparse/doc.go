// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p                PORT                (default 3318)
	-d                DATABASE_URL        (required)
	-t                DATABASE_TYPE       sqlite or postgres (default sqlite)
	-results-contest  RESULTS_CONTEST_ID  (required)
	-allow-reset      ALLOW_ADMIN_RESET   (default false)
	-session-secret   SESSION_SECRET      (required)
	-session-ttl      SESSION_TTL         (default 72h)
	-ballot-ttl       BALLOT_TTL          (default 30m)
	-ip-salt          IP_HASH_SALT        empty stores no IP hash
	-base-url         PUBLIC_BASE_URL     (default http://localhost:<port>)
	-image-dir        IMAGE_DIR           (default ./nominee-images)

Environment only:

	S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_USE_SSL
	ADMIN_EMAIL, ADMIN_PASSWORD

CLI flags take precedence over environment variables. An unparseable
ALLOW_ADMIN_RESET logs a warning and leaves reset disabled.
*/
package cliparse
