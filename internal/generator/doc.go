// Package generator runs the transformation pipeline and turns its
// output into project files.
//
// Pipeline performs every model transformation up front. Generators are
// then selected from a Registry by the project configuration: one backend
// generator per {framework, architecture} pair and one frontend generator
// per framework. Each returns artifacts in memory; WriteArtifacts touches
// the filesystem only once every generator has succeeded.
package generator
