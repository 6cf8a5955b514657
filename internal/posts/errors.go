package posts

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	readFailedCode         = "POSTS_READ_FAILED"
	frontMatterInvalidCode = "POSTS_FRONTMATTER_INVALID"
	renderFailedCode       = "POSTS_RENDER_FAILED"
	slugInvalidCode        = "POSTS_SLUG_INVALID"
)

// The wrappers below classify failures for the diagnostic log. None of the
// resulting errors leave the package.

func wrapReadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "post file could not be read").
		WithTextCode(readFailedCode)
}

func wrapFrontMatterError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post front-matter is invalid").
		WithTextCode(frontMatterInvalidCode)
}

func wrapRenderError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "post body could not be rendered").
		WithTextCode(renderFailedCode)
}

func wrapSlugError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post slug is not valid URL encoding").
		WithTextCode(slugInvalidCode)
}
