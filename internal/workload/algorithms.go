package workload

// First reads the first element of data, whatever its length.
func First(data []int) error {
	if len(data) > 0 {
		_ = data[0]
	}
	return nil
}

// Sum adds every element.
func Sum(data []int) int {
	total := 0
	for _, v := range data {
		total += v
	}
	return total
}

// LinearSearch returns the index of target in data, or -1.
func LinearSearch(data []int, target int) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}
	return -1
}

// BinarySearch returns the index of target in ascending data, or -1.
func BinarySearch(data []int, target int) int {
	lo, hi := 0, len(data)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case data[mid] == target:
			return mid
		case data[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// SelectionSort sorts data in place.
func SelectionSort(data []int) {
	for i := 0; i < len(data)-1; i++ {
		smallest := i
		for j := i + 1; j < len(data); j++ {
			if data[j] < data[smallest] {
				smallest = j
			}
		}
		data[i], data[smallest] = data[smallest], data[i]
	}
}

// Quicksort sorts data in place (Hoare partition, middle pivot).
func Quicksort(data []int) {
	for len(data) > 1 {
		p := partition(data)
		// Recurse into the smaller half to bound stack depth.
		if p < len(data)-p {
			Quicksort(data[:p])
			data = data[p:]
		} else {
			Quicksort(data[p:])
			data = data[:p]
		}
	}
}

// partition returns p such that data[:p] <= data[p:] element-wise,
// with 0 < p < len(data).
func partition(data []int) int {
	pivot := data[(len(data)-1)/2]
	i, j := -1, len(data)
	for {
		for i++; data[i] < pivot; i++ {
		}
		for j--; data[j] > pivot; j-- {
		}
		if i >= j {
			return j + 1
		}
		data[i], data[j] = data[j], data[i]
	}
}

// ZeroPairs counts pairs i<j with data[i]+data[j] == 0.
func ZeroPairs(data []int) int {
	count := 0
	for i := range data {
		for j := i + 1; j < len(data); j++ {
			if data[i]+data[j] == 0 {
				count++
			}
		}
	}
	return count
}

// ZeroTriples counts triples i<j<k with data[i]+data[j]+data[k] == 0.
func ZeroTriples(data []int) int {
	count := 0
	for i := range data {
		for j := i + 1; j < len(data); j++ {
			for k := j + 1; k < len(data); k++ {
				if data[i]+data[j]+data[k] == 0 {
					count++
				}
			}
		}
	}
	return count
}
