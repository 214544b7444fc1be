package cliconfig

// ParseCmdLineAndMergeWithLoadedConfigs is the one-call entry point for the
// common case: parse the process's command-line options, load (or create) the
// config file they select, merge the options in and return the effective
// configuration. tailDocs is the documentation appended to config files the
// call creates -- typically the output of [DocumentedConfigModels].
//
// For custom arguments, env overrides or a redirected diagnostics stream,
// use [NewResolver] directly.
func ParseCmdLineAndMergeWithLoadedConfigs[C RootConfig[C], O CmdLineOptions[C]](parse ParseFunc[C, O], tailDocs string) (C, error) {
	return NewResolver(parse).WithTailDocs(tailDocs).Resolve()
}
