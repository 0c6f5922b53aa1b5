// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter codes, admin sessions, and password hashing.

# Voter Codes

Each voter link carries an opaque code:

	code := auth.GenerateVoterCode()

Codes are random UUIDs. If the system random source fails, an 8-character
base36 code is generated instead.

# Admin Sessions

Admins sign in with email and password and receive an HS256 JWT:

	token, err := auth.IssueSession(userID, secret, 72*time.Hour, time.Now())
	userID, err := auth.ParseSession(token, secret)

Tokens are sent as "Authorization: Bearer <token>"; BearerToken extracts them.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password) // ErrPasswordMismatch

# IP Hashing

For privacy-preserving vote metadata:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
