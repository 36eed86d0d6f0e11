// Package nodelink renders implication graphs as directed node-link
// diagrams using Graphviz.
//
// [ToDOT] converts a term graph to Graphviz DOT markup; [RenderSVG] and
// [RenderPNG] rasterize that markup via the embedded Graphviz engine.
// Source terms (base assumptions no rule concludes) get a distinct outline
// and sink terms (terminal conclusions) a filled shade, so the flow of
// derivation is visible at a glance.
package nodelink
