// Package config loads the application configuration.
//
// Configuration is assembled from three layers, in increasing precedence:
//
//  1. Struct-tag defaults (`default:"..."` tags on the partial configs)
//  2. A .env file in the working directory, loaded via godotenv
//  3. Process environment variables, bound through Viper
//
// Nested keys map to underscore-separated environment variables, so
// `database.host` is set with DATABASE_HOST and `auth.jwt_secret` with
// AUTH_JWT_SECRET.
//
// Each subsystem (server, database, storage, log, auth) owns its partial
// Config struct; this package only composes them.
package config
