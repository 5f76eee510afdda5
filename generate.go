//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/docforge/modmap --repository.default-branch master --repository.path /

package modmap
