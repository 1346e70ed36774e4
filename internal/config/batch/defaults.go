package batch

// defaultWorkers 0 表示使用 runtime.NumCPU()
const defaultWorkers = 0

// maxWorkers 并发上限
const maxWorkers = 256
