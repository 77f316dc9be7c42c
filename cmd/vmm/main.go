package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/icsim/vmm"
	"github.com/icsim/vmm/config"
	"github.com/icsim/vmm/logging"
)

// At most this many addresses are read from the input file.
const maxAddresses = 1000

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <addresses-file> [config-file]\n", os.Args[0])
		os.Exit(1)
	}

	cfg := config.Default()
	if len(os.Args) > 2 {
		loaded, err := config.Load(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logging.Setup(cfg.LogLevel, "vmm")

	addresses, err := loadAddresses(os.Args[1])
	if err != nil {
		log.Error("Could not read addresses", "file", os.Args[1], "error", err)
		os.Exit(1)
	}

	mmu, err := vmm.New(cfg)
	if err != nil {
		log.Error("Could not initialize MMU", "error", err)
		os.Exit(1)
	}

	for _, logical := range addresses {
		physical, err := mmu.GetPhysical(logical)
		if err != nil {
			log.Error("Translation failed", "logical", logical, "error", err)
			os.Exit(1)
		}
		value, err := mmu.GetValue(physical)
		if err != nil {
			log.Error("Value read failed", "physical", physical, "error", err)
			os.Exit(1)
		}
		fmt.Printf("logical: %-4d \t physical: %-4d \t value: %-4d\n\n", logical, physical, value)
	}

	stats := mmu.Stats()
	if err := mmu.Close(); err != nil {
		log.Error("Shutdown failed", "error", err)
	}
	fmt.Printf("Page Fault: %2.2f%%\n", stats.FaultRate())
	fmt.Printf("TLB HIT: %2.2f%%\n", stats.HitRate())
}

// loadAddresses reads up to maxAddresses whitespace-separated decimal
// logical addresses from a text file.
func loadAddresses(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	addresses := make([]uint32, 0, maxAddresses)
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() && len(addresses) < maxAddresses {
		v, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("Bad address %q: %w", scanner.Text(), err)
		}
		addresses = append(addresses, uint32(v))
	}
	return addresses, scanner.Err()
}
