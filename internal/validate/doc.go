// Package validate sanitizes user-supplied names before they are used to
// build filesystem paths. Validate is a pure function: it never prints,
// exits, or touches the filesystem. Rejections are returned as
// *RejectionError values carrying a Reason, and the rules are applied in a
// fixed order so the same input always reports the same first failure.
package validate
