package utils

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree
// contiguous buckets whose sizes differ by at most one. Buckets beyond
// MaxIndex are empty.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // Beginning and end (exclusive) index of each bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for bn := range pm.Partitions {
		pm.Partitions[bn] = pm.Split1D(bn)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// Split1D computes the range of one bucket. The remainder of the division is
// spread over the first buckets, one item each.
func (pm *PartitionMap) Split1D(bucketNum int) (bucket [2]int) {
	var (
		nPart     = pm.MaxIndex / pm.ParallelDegree
		remainder = pm.MaxIndex % pm.ParallelDegree
		extra     = remainder
		size      = nPart
	)
	if bucketNum < remainder {
		extra = bucketNum
		size++
	}
	bucket[0] = bucketNum*nPart + extra
	bucket[1] = bucket[0] + size
	return
}
