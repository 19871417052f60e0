// Package markdown splits page sources into header and body and renders body
// text into HTML fragments. Renderers are built once and are safe to share
// across pages.
package markdown
