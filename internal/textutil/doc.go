// Package textutil provides the small text-normalization helpers shared by
// the classifier and the conflict analyzer.
//
// Mod filenames arrive in every separator convention imaginable
// (create-forge-0.5.1, OptiFine_HD_U_I6, sodium+fabric). The helpers here
// reduce them to comparable forms: Key for identity checks (exemption set
// membership, duplicate grouping) and Tokens/JoinWords for display-name
// assembly.
package textutil
