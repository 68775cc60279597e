// Package certgen generates a self-signed TLS certificate and key pair
// by shelling out to openssl (genrsa → req → x509). It exists for the
// `picohttp gencert` command; the server only ever reads the resulting
// PEM files from disk.
package certgen
