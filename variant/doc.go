// Package variant supplies the small capability set that specializes the
// search engine for the jumper and via routing strategies: cost
// units, numeric penalty knobs, the cost-to-end heuristic, and the
// rip-required decision. Both concrete policies share one base
// implementation and differ only in unit of cost, default knob values, and
// the heuristic they consult.
package variant
