// Package keys defines the stored RSA key pair entity, its query type and the
// service and repository contracts used by the application and API layers.
package keys
